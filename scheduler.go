package hive

import (
	"context"
	"reflect"
	"time"
)

// System is a per-tick update callback. Systems read and write the world
// through queries and the generic component accessors; they run strictly in
// registration order, one at a time.
type System interface {
	Update(w *World, dt float64)
}

// SystemStats reports execution timing for one registered system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemEntry struct {
	system System
	name   string
	count  int64
	min    time.Duration
	max    time.Duration
	last   time.Duration
	total  time.Duration
}

// Scheduler drives an ordered list of systems over a single world.
type Scheduler struct {
	world   *World
	systems []*systemEntry
}

// NewScheduler creates a scheduler for the given world.
func NewScheduler(w *World) *Scheduler {
	return &Scheduler{world: w}
}

// Add registers a system. Systems run in the order they were added.
func (s *Scheduler) Add(sys System) {
	s.systems = append(s.systems, &systemEntry{
		system: sys,
		name:   systemName(sys),
		min:    time.Duration(1<<63 - 1),
	})
}

// Remove deregisters a system by identity. Returns false if it was not
// registered.
func (s *Scheduler) Remove(sys System) bool {
	for i, entry := range s.systems {
		if entry.system == sys {
			s.systems = append(s.systems[:i], s.systems[i+1:]...)
			return true
		}
	}
	return false
}

// Update runs every system once, in order, with the elapsed time in seconds.
func (s *Scheduler) Update(dt float64) {
	for _, entry := range s.systems {
		start := time.Now()
		entry.system.Update(s.world, dt)
		d := time.Since(start)
		entry.count++
		entry.last = d
		entry.total += d
		if d < entry.min {
			entry.min = d
		}
		if d > entry.max {
			entry.max = d
		}
	}
}

// Run ticks the scheduler at the given interval until the context is
// cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			s.Update(dt)
		}
	}
}

// Stats returns timing statistics for every registered system, in order.
func (s *Scheduler) Stats() []SystemStats {
	out := make([]SystemStats, len(s.systems))
	for i, entry := range s.systems {
		avg := time.Duration(0)
		if entry.count > 0 {
			avg = entry.total / time.Duration(entry.count)
		}
		out[i] = SystemStats{
			Name:           entry.name,
			ExecutionCount: entry.count,
			MinDuration:    entry.min,
			MaxDuration:    entry.max,
			AvgDuration:    avg,
			LastDuration:   entry.last,
			TotalDuration:  entry.total,
		}
	}
	return out
}

func systemName(sys System) string {
	t := reflect.TypeOf(sys)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
