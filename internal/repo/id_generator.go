package repo

import "time"

// IDGenerator hands out time based ids with microsecond resolution. When the
// clock has not moved past the previous id, the previous id plus one is used,
// so ids are strictly increasing.
type IDGenerator struct {
	now  func() time.Time
	last int64
}

func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

func (g *IDGenerator) Next() int64 {
	id := g.now().UnixMicro()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe raises the floor so ids issued later stay above id.
func (g *IDGenerator) Observe(id int64) {
	if id > g.last {
		g.last = id
	}
}
