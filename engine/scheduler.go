package engine

import "time"

// Task is a callback registered on a Scheduler
type Task struct {
	interval  time.Duration
	deadline  time.Duration
	repeat    bool
	cancelled bool
	fn        func()
}

// Cancel stops further firings, safe to call more than once and from inside the callback
func (t *Task) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Active reports whether the task may still fire
func (t *Task) Active() bool {
	return t != nil && !t.cancelled
}

// Scheduler runs callbacks on simulated time advanced by the session step
// Deadlines advance by the interval rather than by "now" so ticks do not drift with frame jitter
type Scheduler struct {
	now   time.Duration
	tasks []*Task
}

// NewScheduler creates an empty scheduler at time zero
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Every registers fn to run each interval, first firing one interval from now
func (s *Scheduler) Every(interval time.Duration, fn func()) *Task {
	return s.add(interval, true, fn)
}

// After registers fn to run once after d
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	return s.add(d, false, fn)
}

func (s *Scheduler) add(d time.Duration, repeat bool, fn func()) *Task {
	if d <= 0 {
		d = time.Nanosecond
	}
	t := &Task{
		interval: d,
		deadline: s.now + d,
		repeat:   repeat,
		fn:       fn,
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves simulated time forward and fires due tasks in deadline order
// A repeating task fires once per elapsed interval, stopping as soon as it is cancelled
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := s.now + dt

	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.deadline
		if next.repeat {
			next.deadline += next.interval
		} else {
			next.cancelled = true
		}
		next.fn()
	}

	s.now = target
	s.compact()
}

// nextDue returns the earliest active task with deadline <= target
func (s *Scheduler) nextDue(target time.Duration) *Task {
	var best *Task
	for _, t := range s.tasks {
		if t.cancelled || t.deadline > target {
			continue
		}
		if best == nil || t.deadline < best.deadline {
			best = t
		}
	}
	return best
}

func (s *Scheduler) compact() {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			s.tasks[n] = t
			n++
		}
	}
	for i := n; i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = s.tasks[:n]
}

// Reset cancels every task and rewinds time to zero
func (s *Scheduler) Reset() {
	for _, t := range s.tasks {
		t.cancelled = true
	}
	s.tasks = s.tasks[:0]
	s.now = 0
}

// Pending returns the number of active tasks
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Now returns the simulated time since the last reset
func (s *Scheduler) Now() time.Duration {
	return s.now
}
