package analyze_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmlarsen/chatlens/internal/analyze"
	"github.com/jmlarsen/chatlens/internal/chat"
)

func TestTimelineDailyZeroFill(t *testing.T) {
	s := storeFrom(t,
		"1/1/24, 9:00 AM - Alice: day one",
		"1/4/24, 9:00 AM - Bob: day four",
	)

	timeline := analyze.Timeline(s, analyze.Daily)
	require.Len(t, timeline, 4)

	assert.Equal(t, 1, timeline[0].Count)
	assert.Equal(t, 0, timeline[1].Count)
	assert.Equal(t, 0, timeline[2].Count)
	assert.Equal(t, 1, timeline[3].Count)
}

func TestTimelineContiguousSteps(t *testing.T) {
	s := storeFrom(t,
		"1/1/24, 9:00 AM - Alice: start",
		"3/15/24, 9:00 AM - Bob: much later",
	)

	for _, g := range []analyze.Granularity{analyze.Daily, analyze.Weekly, analyze.Monthly} {
		timeline := analyze.Timeline(s, g)
		require.NotEmpty(t, timeline, "granularity %s", g)
		for i := 1; i < len(timeline); i++ {
			prev := timeline[i-1].Period
			var want time.Time
			switch g {
			case analyze.Weekly:
				want = prev.AddDate(0, 0, 7)
			case analyze.Monthly:
				want = prev.AddDate(0, 1, 0)
			default:
				want = prev.AddDate(0, 0, 1)
			}
			assert.Equal(t, want, timeline[i].Period, "granularity %s index %d", g, i)
		}
	}
}

func TestTimelineWeeklyStartsMonday(t *testing.T) {
	// 2024-01-03 was a Wednesday; its week starts Monday 2024-01-01
	s := storeFrom(t, "1/3/24, 9:00 AM - Alice: midweek")

	timeline := analyze.Timeline(s, analyze.Weekly)
	require.Len(t, timeline, 1)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), timeline[0].Period)
	assert.Equal(t, time.Monday, timeline[0].Period.Weekday())
}

func TestTimelineMonthly(t *testing.T) {
	s := storeFrom(t,
		"1/10/24, 9:00 AM - Alice: january",
		"3/5/24, 9:00 AM - Bob: march",
	)

	timeline := analyze.Timeline(s, analyze.Monthly)
	require.Len(t, timeline, 3)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), timeline[0].Period)
	assert.Equal(t, 0, timeline[1].Count) // february zero-filled
	assert.Equal(t, 1, timeline[2].Count)
}

func TestTimelineExcludesSystem(t *testing.T) {
	s := storeFrom(t,
		"1/1/24, 9:00 AM - Alice: hi",
		"1/1/24, 9:01 AM - Bob left",
	)

	timeline := analyze.Timeline(s, analyze.Daily)
	require.Len(t, timeline, 1)
	assert.Equal(t, 1, timeline[0].Count)
}

func TestTimelineEmptyStore(t *testing.T) {
	assert.Empty(t, analyze.Timeline(chat.NewStore(nil), analyze.Daily))
}

func TestHourHistogram(t *testing.T) {
	s := storeFrom(t,
		"1/1/24, 9:00 AM - Alice: morning",
		"1/1/24, 9:45 AM - Bob: also morning",
		"1/1/24, 11:30 PM - Alice: night",
	)

	hist := analyze.HourHistogram(s)
	assert.Equal(t, 2, hist[9])
	assert.Equal(t, 1, hist[23])
	assert.Equal(t, 0, hist[0])
}

func TestWeekdayHistogram(t *testing.T) {
	// 2024-01-01 was a Monday
	s := storeFrom(t,
		"1/1/24, 9:00 AM - Alice: monday",
		"1/2/24, 9:00 AM - Bob: tuesday",
		"1/8/24, 9:00 AM - Alice: next monday",
	)

	hist := analyze.WeekdayHistogram(s)
	assert.Equal(t, 2, hist[int(time.Monday)])
	assert.Equal(t, 1, hist[int(time.Tuesday)])
	assert.Equal(t, 0, hist[int(time.Sunday)])
}

func TestParseGranularity(t *testing.T) {
	for in, want := range map[string]analyze.Granularity{
		"day": analyze.Daily, "week": analyze.Weekly, "month": analyze.Monthly,
		"d": analyze.Daily, "w": analyze.Weekly, "m": analyze.Monthly,
	} {
		g, err := analyze.ParseGranularity(in)
		require.NoError(t, err)
		assert.Equal(t, want, g)
	}

	_, err := analyze.ParseGranularity("fortnight")
	assert.Error(t, err)
}
