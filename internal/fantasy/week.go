package fantasy

import "time"

// Window is the Monday-through-Sunday scheduling window containing a given
// day. Derived per invocation, never cached.
type Window struct {
	Start time.Time // Monday 00:00
	End   time.Time // Sunday 23:59:59.999999999
}

// WeekOf returns the window containing today: the most recent Monday at
// midnight through the following Sunday, end of day inclusive, in today's
// location.
func WeekOf(today time.Time) Window {
	daysSinceMonday := (int(today.Weekday()) + 6) % 7
	monday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location()).
		AddDate(0, 0, -daysSinceMonday)
	return Window{
		Start: monday,
		End:   monday.AddDate(0, 0, 7).Add(-time.Nanosecond),
	}
}

// Contains reports whether t falls inside the window, endpoints inclusive.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// GamesInWindow counts the player's scheduled games inside the window.
func GamesInWindow(p *Player, w Window) int {
	if p == nil {
		return 0
	}
	count := 0
	for _, g := range p.Schedule {
		if w.Contains(g.Date) {
			count++
		}
	}
	return count
}
