package drawer

import "time"

// Tween interpolates a single value between two endpoints over a fixed duration.
// It is bound to one row index and is advanced by a Scheduler.
type Tween struct {
	index    int
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	easing   EasingFunc

	onUpdate   func(value float64)
	onComplete func()

	value   float64
	stopped bool
	done    bool
}

// NewTween creates a tween for the row at index that starts at the given time.
// A nil easing selects QuadraticOut.
func NewTween(index int, from, to float64, start time.Time, duration time.Duration, easing EasingFunc) *Tween {
	if easing == nil {
		easing = QuadraticOut
	}
	return &Tween{
		index:    index,
		from:     from,
		to:       to,
		start:    start,
		duration: duration,
		easing:   easing,
		value:    from,
	}
}

// OnUpdate sets the callback invoked with every interpolated value.
func (t *Tween) OnUpdate(fn func(value float64)) *Tween {
	t.onUpdate = fn
	return t
}

// OnComplete sets the callback invoked once, after the final update.
// It is never invoked for a stopped tween.
func (t *Tween) OnComplete(fn func()) *Tween {
	t.onComplete = fn
	return t
}

// Update advances the tween to now and reports whether it is still running.
func (t *Tween) Update(now time.Time) bool {
	if t.stopped || t.done {
		return false
	}

	progress := 1.0
	if t.duration > 0 {
		elapsed := now.Sub(t.start)
		if elapsed < 0 {
			elapsed = 0
		}
		progress = float64(elapsed) / float64(t.duration)
	}
	if progress > 1 {
		progress = 1
	}

	if progress == 1 {
		t.value = t.to
	} else {
		t.value = t.from + (t.to-t.from)*t.easing(progress)
	}
	if t.onUpdate != nil {
		t.onUpdate(t.value)
	}

	if progress < 1 {
		return true
	}

	t.done = true
	if t.onComplete != nil {
		t.onComplete()
	}
	return false
}

// Stop halts the tween. No further updates or completion callbacks fire.
func (t *Tween) Stop() {
	t.stopped = true
}

// Running reports whether the tween has neither finished nor been stopped.
func (t *Tween) Running() bool {
	return !t.stopped && !t.done
}

// Index returns the row index the tween is bound to.
func (t *Tween) Index() int {
	return t.index
}

// Value returns the most recent interpolated value.
func (t *Tween) Value() float64 {
	return t.value
}

// Target returns the value the tween ends at.
func (t *Tween) Target() float64 {
	return t.to
}
