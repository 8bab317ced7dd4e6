package fantasy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekOfMidweek(t *testing.T) {
	// Wednesday 2026-01-14 -> Monday the 12th through Sunday the 18th.
	w := WeekOf(time.Date(2026, time.January, 14, 15, 30, 0, 0, time.UTC))

	assert.Equal(t, date(2026, time.January, 12), w.Start)
	assert.Equal(t, time.Monday, w.Start.Weekday())
	assert.Equal(t, time.Sunday, w.End.Weekday())
	assert.Equal(t, 18, w.End.Day())
}

func TestWeekOfMonday(t *testing.T) {
	// A Monday is its own week start, whatever the time of day.
	w := WeekOf(time.Date(2026, time.January, 12, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, date(2026, time.January, 12), w.Start)
}

func TestWeekOfSunday(t *testing.T) {
	// Sunday belongs to the week that began the previous Monday.
	w := WeekOf(date(2026, time.January, 18))
	assert.Equal(t, date(2026, time.January, 12), w.Start)
}

func TestWeekOfCrossesMonthBoundary(t *testing.T) {
	// Sunday 2026-02-01 -> week started Monday 2026-01-26.
	w := WeekOf(date(2026, time.February, 1))
	assert.Equal(t, date(2026, time.January, 26), w.Start)
}

func TestWindowContainsEndpointsInclusive(t *testing.T) {
	w := WeekOf(date(2026, time.January, 14))

	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.Start.Add(-time.Nanosecond)))
	assert.False(t, w.Contains(w.End.Add(time.Nanosecond)))

	// Sunday late evening is still in the week.
	assert.True(t, w.Contains(time.Date(2026, time.January, 18, 23, 0, 0, 0, time.UTC)))
}

func TestGamesInWindow(t *testing.T) {
	w := WeekOf(date(2026, time.January, 14))
	p := &Player{Schedule: []Game{
		{Date: date(2026, time.January, 11)}, // previous Sunday, outside
		{Date: date(2026, time.January, 12)}, // Monday, inside
		{Date: time.Date(2026, time.January, 15, 19, 30, 0, 0, time.UTC)}, // inside
		{Date: date(2026, time.January, 18)}, // Sunday, inside
		{Date: date(2026, time.January, 19)}, // next Monday, outside
	}}

	assert.Equal(t, 3, GamesInWindow(p, w))
}

func TestGamesInWindowEmptySchedule(t *testing.T) {
	w := WeekOf(date(2026, time.January, 14))

	assert.Equal(t, 0, GamesInWindow(&Player{}, w))
	assert.Equal(t, 0, GamesInWindow(nil, w))
}
