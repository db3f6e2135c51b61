package audio

import "github.com/lixenwraith/seasons/season"

// Note frequencies in Hz
const (
	NoteA4  = 440.00
	NoteC5  = 523.25
	NoteD5  = 587.33
	NoteE5  = 659.25
	NoteF5s = 739.99
	NoteG5  = 783.99
	NoteA5  = 880.00
	NoteB5  = 987.77
)

// arpeggios are rising triads, major for the warm seasons and minor for the cold ones
var arpeggios = [season.Count][3]float64{
	season.Spring: {NoteC5, NoteE5, NoteG5},
	season.Summer: {NoteD5, NoteF5s, NoteA5},
	season.Autumn: {NoteA4, NoteC5, NoteE5},
	season.Winter: {NoteE5, NoteG5, NoteB5},
}

// Arpeggio returns the three chime notes of s
func Arpeggio(s season.Season) [3]float64 {
	return arpeggios[s]
}
