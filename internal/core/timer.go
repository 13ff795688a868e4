package core

import "time"

// StageTiming records how long a named pipeline stage took.
type StageTiming struct {
	Stage    string
	Duration time.Duration
}

// Stopwatch accumulates stage durations in the order the stages ran.
type Stopwatch struct {
	now     func() time.Time
	last    time.Time
	timings []StageTiming
}

// NewStopwatch starts a stopwatch at the current time.
func NewStopwatch() *Stopwatch {
	return newStopwatch(time.Now)
}

func newStopwatch(now func() time.Time) *Stopwatch {
	return &Stopwatch{now: now, last: now()}
}

// Lap closes the current stage under the given name and starts the next one.
func (s *Stopwatch) Lap(stage string) time.Duration {
	now := s.now()
	d := now.Sub(s.last)
	s.last = now
	s.timings = append(s.timings, StageTiming{Stage: stage, Duration: d})
	return d
}

// Timings returns a copy of the recorded laps.
func (s *Stopwatch) Timings() []StageTiming {
	return append([]StageTiming(nil), s.timings...)
}

// Total sums all recorded laps.
func (s *Stopwatch) Total() time.Duration {
	var total time.Duration
	for _, t := range s.timings {
		total += t.Duration
	}
	return total
}
