package render

import (
	"github.com/lixenwraith/seasons/terminal"
)

// Cell is an alias to terminal.Cell to avoid copying
type Cell = terminal.Cell
type Attr = terminal.Attr
