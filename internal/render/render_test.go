package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", pad("ab", 5))
	assert.Equal(t, "abcdef", pad("abcdef", 3))
	// double-width runes count as two cells
	assert.Equal(t, "你好 ", pad("你好", 5))
}

func TestTableAligns(t *testing.T) {
	out := Table(
		[]string{"Author", "Count"},
		[][]string{{"Alice", "3"}, {"B", "12"}},
	)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Alice   3")
	assert.Contains(t, lines[2], "B       12")
}

func TestBar(t *testing.T) {
	assert.Equal(t, "", Bar(0, 10, 40))
	assert.Equal(t, "", Bar(5, 0, 40))
	assert.Equal(t, 40, strings.Count(Bar(10, 10, 40), "█"))
	assert.Equal(t, 20, strings.Count(Bar(5, 10, 40), "█"))
	// nonzero values always get at least one cell
	assert.Equal(t, 1, strings.Count(Bar(1, 1000, 40), "█"))
}

func TestBarWidthBounds(t *testing.T) {
	w := BarWidth(20)
	assert.GreaterOrEqual(t, w, 10)
	assert.LessOrEqual(t, w, 60)
}
