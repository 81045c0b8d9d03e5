package clock

import "time"

// ID identifies a scheduled timer.
type ID uint64

type timer struct {
	id       ID
	deadline time.Time
	period   time.Duration // zero for one-shot timers
	fn       func()
}

// Scheduler is a timer queue driven from the game loop. Callbacks never
// run on their own goroutine: they fire inside Run, on the caller's
// goroutine, so they cannot interleave with a frame update.
type Scheduler struct {
	src    Source
	timers []*timer
	nextID ID
}

func NewScheduler(src Source) *Scheduler {
	return &Scheduler{src: src}
}

// Now reports the scheduler's current time.
func (s *Scheduler) Now() time.Time { return s.src.Now() }

// After runs fn once, d from now.
func (s *Scheduler) After(d time.Duration, fn func()) ID {
	return s.add(d, 0, fn)
}

// Every runs fn each period, first firing one period from now.
// A non-positive period is raised to one millisecond.
func (s *Scheduler) Every(period time.Duration, fn func()) ID {
	if period <= 0 {
		period = time.Millisecond
	}
	return s.add(period, period, fn)
}

func (s *Scheduler) add(d, period time.Duration, fn func()) ID {
	s.nextID++
	s.timers = append(s.timers, &timer{
		id:       s.nextID,
		deadline: s.src.Now().Add(d),
		period:   period,
		fn:       fn,
	})
	return s.nextID
}

// Cancel removes a pending timer. It is safe to call from inside a callback
// and for ids that already fired.
func (s *Scheduler) Cancel(id ID) {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

// Pending returns the number of timers still queued.
func (s *Scheduler) Pending() int { return len(s.timers) }

// Run fires every timer due at the current time, earliest deadline first
// and in registration order on ties. Timers added by a callback fire in
// the same Run if they are already due. A repeating timer that fell
// several periods behind fires once and resumes on its next future slot.
func (s *Scheduler) Run() int {
	now := s.src.Now()
	fired := 0
	for {
		t := s.nextDue(now)
		if t == nil {
			return fired
		}
		if t.period > 0 {
			t.deadline = t.deadline.Add(t.period)
			if !t.deadline.After(now) {
				behind := now.Sub(t.deadline)/t.period + 1
				t.deadline = t.deadline.Add(behind * t.period)
			}
		} else {
			s.Cancel(t.id)
		}
		t.fn()
		fired++
	}
}

func (s *Scheduler) nextDue(now time.Time) *timer {
	var best *timer
	for _, t := range s.timers {
		if t.deadline.After(now) {
			continue
		}
		if best == nil || t.deadline.Before(best.deadline) ||
			(t.deadline.Equal(best.deadline) && t.id < best.id) {
			best = t
		}
	}
	return best
}
