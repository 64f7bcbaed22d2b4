package parse

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDashTwelveHour(t *testing.T) {
	d, err := detectDialect([]string{"1/1/24, 9:00 AM - Alice: hi"})
	require.NoError(t, err)
	assert.False(t, d.Bracketed)
	assert.True(t, d.Hour12)
	assert.False(t, d.HasSeconds)
	assert.False(t, d.DayFirst)
}

func TestDetectDashTwentyFourHour(t *testing.T) {
	d, err := detectDialect([]string{"15/1/24, 21:30 - Alice: hej"})
	require.NoError(t, err)
	assert.False(t, d.Bracketed)
	assert.False(t, d.Hour12)
	assert.True(t, d.DayFirst)
}

func TestDetectBracketWithSeconds(t *testing.T) {
	d, err := detectDialect([]string{"[1/1/24, 9:00:03 AM] Alice: hi"})
	require.NoError(t, err)
	assert.True(t, d.Bracketed)
	assert.True(t, d.Hour12)
	assert.True(t, d.HasSeconds)
}

func TestDetectDayFirstFromLaterSample(t *testing.T) {
	lines := []string{
		"1/1/24, 9:00 AM - Alice: ambiguous",
		"2/1/24, 9:05 AM - Bob: still ambiguous",
		"25/1/24, 9:10 AM - Alice: proof of day-first",
	}
	d, err := detectDialect(lines)
	require.NoError(t, err)
	assert.True(t, d.DayFirst)
}

func TestDetectIgnoresCrossDialectDateEvidence(t *testing.T) {
	lines := []string{
		"1/1/24, 9:00 AM - Alice: ambiguous",
		"2/1/24, 9:05 AM - Bob: still ambiguous",
		"[13/1/24, 9:06:00 AM] Carol: stray bracket line",
	}
	d, err := detectDialect(lines)
	require.NoError(t, err)
	assert.False(t, d.Bracketed)
	// the stray line's first field must not flip the locked dialect
	assert.False(t, d.DayFirst)
}

func TestDetectUnrecognized(t *testing.T) {
	_, err := detectDialect([]string{"hello", "world"})
	assert.ErrorIs(t, err, ErrFormatUnrecognized)
}

func TestResolveTwelveHourClock(t *testing.T) {
	d := Dialect{Hour12: true}

	tests := []struct {
		date, clock, meridiem string
		want                  time.Time
	}{
		{"1/1/24", "9:00", "AM", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{"1/1/24", "9:00", "PM", time.Date(2024, 1, 1, 21, 0, 0, 0, time.UTC)},
		{"1/1/24", "12:05", "AM", time.Date(2024, 1, 1, 0, 5, 0, 0, time.UTC)},
		{"1/1/24", "12:05", "PM", time.Date(2024, 1, 1, 12, 5, 0, 0, time.UTC)},
		{"2/14/2024", "1:30", "PM", time.Date(2024, 2, 14, 13, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, ok := d.resolve(header{date: tt.date, clock: tt.clock, meridiem: tt.meridiem})
		require.True(t, ok, "resolve %s %s %s", tt.date, tt.clock, tt.meridiem)
		assert.Equal(t, tt.want, got)
	}
}

func TestResolveDayFirst(t *testing.T) {
	d := Dialect{DayFirst: true}
	got, ok := d.resolve(header{date: "14/2/24", clock: "18:45"})
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 2, 14, 18, 45, 0, 0, time.UTC), got)
}

func TestResolveFailure(t *testing.T) {
	d := Dialect{}
	_, ok := d.resolve(header{date: "13/13/24", clock: "9:00"})
	assert.False(t, ok)
}

func TestResolveMissingMeridiemUnderTwelveHourLock(t *testing.T) {
	d := Dialect{Hour12: true}
	_, ok := d.resolve(header{date: "1/1/24", clock: "9:00"})
	assert.False(t, ok)
}

func TestClassifyLineContinuationCrossDialect(t *testing.T) {
	d := Dialect{} // dash locked
	c := ClassifyLine("[1/1/24, 9:00 AM] Bob: other style", d)
	assert.Equal(t, LineContinuation, c.Class)
	assert.True(t, c.CrossDialect)

	c = ClassifyLine("plain continuation", d)
	assert.Equal(t, LineContinuation, c.Class)
	assert.False(t, c.CrossDialect)
}

func TestClassifyLineAuthorSeparator(t *testing.T) {
	d := Dialect{Hour12: true}
	c := ClassifyLine("1/1/24, 9:00 AM - Alice: re: later: ok", d)
	require.Equal(t, LineMessage, c.Class)
	assert.Equal(t, "Alice", c.Author)
	assert.Equal(t, "re: later: ok", c.Body)
}

func TestDialectString(t *testing.T) {
	assert.Equal(t, "dash/month-first/12h", Dialect{Hour12: true}.String())
	assert.Equal(t, "bracket/day-first/24h", Dialect{Bracketed: true, DayFirst: true}.String())
}

func TestIsMediaPlaceholder(t *testing.T) {
	assert.True(t, IsMediaPlaceholder("<Media omitted>"))
	assert.True(t, IsMediaPlaceholder("  image omitted  "))
	assert.True(t, IsMediaPlaceholder("GIF omitted"))
	assert.False(t, IsMediaPlaceholder("the image omitted something"))
	assert.False(t, IsMediaPlaceholder("hello"))
}

func TestParseBracketDialectEndToEnd(t *testing.T) {
	input := strings.Join([]string{
		"[1/1/24, 9:00:03 AM] Alice: hi",
		"[1/1/24, 9:01:10 AM] Bob: hello",
	}, "\n")

	result, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	assert.True(t, result.Dialect.Bracketed)
	assert.Equal(t, time.Date(2024, 1, 1, 9, 0, 3, 0, time.UTC), result.Records[0].Timestamp)
}
