package drawer

import (
	"sort"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

// defaultFPS is the target display refresh rate of the frame loop.
const defaultFPS = 60

// DefaultFrameInterval is the delay between two animation frames.
//
//nolint:gochecknoglobals // Derived once from defaultFPS.
var DefaultFrameInterval = time.Duration(harmonica.FPS(defaultFPS) * float64(time.Second))

//nolint:gochecknoglobals // Source of unique scheduler IDs.
var schedulerSeq atomic.Uint64

// FrameMsg is delivered once per animation frame. ID identifies the Scheduler
// that requested the frame; other schedulers ignore it.
type FrameMsg struct {
	ID   uint64
	Time time.Time
}

// Scheduler owns the set of active tweens and runs one frame loop for all of them.
// The loop is scheduled only while at least one tween is active.
// At most one tween is tracked per row index.
type Scheduler struct {
	id       uint64
	interval time.Duration
	tweens   map[int]*Tween
	running  bool
	frames   int
}

// NewScheduler creates an idle scheduler. A non-positive interval selects
// DefaultFrameInterval.
func NewScheduler(interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Scheduler{
		id:       schedulerSeq.Add(1),
		interval: interval,
		tweens:   make(map[int]*Tween),
	}
}

// ID returns the identifier carried by this scheduler's frame messages.
func (s *Scheduler) ID() uint64 {
	return s.id
}

// Add registers t, stopping any tween already registered for the same row.
// It returns the command that starts the frame loop, or nil if the loop is
// already running.
func (s *Scheduler) Add(t *Tween) tea.Cmd {
	s.Cancel(t.Index())
	s.tweens[t.Index()] = t

	if s.running {
		return nil
	}
	s.running = true
	return s.nextFrame()
}

// Cancel stops and removes the tween for index. It reports whether one was active.
func (s *Scheduler) Cancel(index int) bool {
	t, ok := s.tweens[index]
	if !ok {
		return false
	}
	t.Stop()
	delete(s.tweens, index)
	return true
}

// Get returns the active tween for index.
func (s *Scheduler) Get(index int) (*Tween, bool) {
	t, ok := s.tweens[index]
	return t, ok
}

// Active returns the number of active tweens.
func (s *Scheduler) Active() int {
	return len(s.tweens)
}

// Running reports whether a frame has been requested and not yet handled.
func (s *Scheduler) Running() bool {
	return s.running
}

// Frames returns the number of frames processed so far.
func (s *Scheduler) Frames() int {
	return s.frames
}

// Tick advances every active tween to now, in row order, and drops the ones that
// finished. It reports whether any tween is still active.
func (s *Scheduler) Tick(now time.Time) bool {
	s.frames++

	indexes := make([]int, 0, len(s.tweens))
	for i := range s.tweens {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	for _, i := range indexes {
		t := s.tweens[i]
		if !t.Update(now) {
			delete(s.tweens, i)
		}
	}
	return len(s.tweens) > 0
}

// HandleFrame processes a frame message addressed to this scheduler and returns
// the command for the next frame, or nil once no tween remains.
// The second result is false when the message belongs to another scheduler.
func (s *Scheduler) HandleFrame(msg FrameMsg) (tea.Cmd, bool) {
	if msg.ID != s.id || !s.running {
		return nil, false
	}
	if s.Tick(msg.Time) {
		return s.nextFrame(), true
	}
	s.running = false
	return nil, true
}

func (s *Scheduler) nextFrame() tea.Cmd {
	id := s.id
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t}
	})
}
