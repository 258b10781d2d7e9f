package render

// arms records which of the four box-drawing lines leave a border point
type arms uint8

const (
	armUp arms = 1 << iota
	armDown
	armLeft
	armRight
)

// cellWidth is the number of characters in a cell segment
const cellWidth = 3

const (
	blankGlyph = " "
	edgeH      = "───"
	blankCell  = "   "
)

var glyphArms = map[string]arms{
	" ": 0,
	"─": armLeft | armRight,
	"│": armUp | armDown,
	"┌": armDown | armRight,
	"┐": armDown | armLeft,
	"└": armUp | armRight,
	"┘": armUp | armLeft,
	"├": armUp | armDown | armRight,
	"┤": armUp | armDown | armLeft,
	"┬": armLeft | armRight | armDown,
	"┴": armLeft | armRight | armUp,
	"┼": armUp | armDown | armLeft | armRight,
}

var armGlyphs = func() map[arms]string {
	m := make(map[arms]string, 16)
	for glyph, a := range glyphArms {
		m[a] = glyph
	}
	// A lone arm cannot occur on a well-formed board
	m[armUp] = "│"
	m[armDown] = "│"
	m[armLeft] = "─"
	m[armRight] = "─"
	return m
}()

// joinGlyph merges two border glyphs drawn at the same point
func joinGlyph(a, b string) string {
	return armGlyphs[glyphArms[a]|glyphArms[b]]
}

// joinSegments merges the bottom border line of one row with the top
// border line of the row below.
func joinSegments(bottom, top []string) []string {
	merged := make([]string, len(bottom))
	for x := range bottom {
		if x%2 == 0 {
			merged[x] = joinGlyph(bottom[x], top[x])
			continue
		}
		if bottom[x] == edgeH || top[x] == edgeH {
			merged[x] = edgeH
		} else {
			merged[x] = blankCell
		}
	}
	return merged
}
