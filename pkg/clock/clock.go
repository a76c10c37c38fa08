package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System reads the wall clock in Location (UTC when nil). Day boundaries
// of streaks and rollovers are computed in this location.
type System struct {
	Location *time.Location
}

func (c System) Now() time.Time {
	if c.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(c.Location)
}

// Fixed always returns T. Used by tests and one-off archive runs.
type Fixed struct {
	T time.Time
}

func (c *Fixed) Now() time.Time {
	return c.T
}

func (c *Fixed) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}
