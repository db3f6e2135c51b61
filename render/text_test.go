package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextWidthMatchesSetText(t *testing.T) {
	for _, s := range []string{"abc", "四季", "❄️ snow", "🌸🌺", "⏎ select"} {
		buf := NewRenderBuffer(40, 1)
		assert.Equal(t, buf.SetText(0, 0, s, RGBWhite, 0), TextWidth(s), s)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 5, "…"))
	assert.Equal(t, "hel…", Truncate("hello", 4, "…"))
	assert.Equal(t, "", Truncate("hello", 0, "…"))

	// Wide clusters are never split
	assert.Equal(t, "四…", Truncate("四季です", 4, "…"))
	assert.Equal(t, "❄️", Truncate("❄️❄️", 3, ""))
	assert.LessOrEqual(t, TextWidth(Truncate("❄️ snow falls", 6, "…")), 6)
}
