package gui

const maxTimers = 32

// Timer is a periodic callback serviced by Toolkit.Handler.
type Timer struct {
	period uint32
	last   uint32
	paused bool
	fn     func()
}

// SetPeriod changes the interval in ms.
func (t *Timer) SetPeriod(ms uint32) { t.period = ms }

func (t *Timer) Pause()  { t.paused = true }
func (t *Timer) Resume() { t.paused = false }

// scheduler is a fixed-capacity cooperative timer list. Timers never catch up:
// a late timer runs once and restarts its period from now.
type scheduler struct {
	timers [maxTimers]*Timer
	count  int
}

func (s *scheduler) add(period, now uint32, fn func()) *Timer {
	t := &Timer{period: period, last: now, fn: fn}
	if s.count >= maxTimers {
		t.paused = true
		return t
	}
	s.timers[s.count] = t
	s.count++
	return t
}

func (s *scheduler) run(now uint32) {
	for i := 0; i < s.count; i++ {
		t := s.timers[i]
		if t.paused || t.fn == nil {
			continue
		}
		if now-t.last < t.period {
			continue
		}
		t.last = now
		t.fn()
	}
}
