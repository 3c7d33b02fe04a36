package drawer

import (
	"fmt"
	"maps"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	listview "github.com/rshade/rowdrawer/internal/tui/list"
)

// AnimationDuration is the length of an animated toggle.
const AnimationDuration = 250 * time.Millisecond

// Relayouter is the part of the virtual list the controller needs: a request to
// recompute row offsets from a row onward, or for all rows when none is given.
type Relayouter interface {
	RecomputeRowHeights(from ...int)
}

// ContentFunc returns the drawer content for a row.
type ContentFunc[T any] func(props listview.RowProps[T]) string

// Option configures a Controller.
type Option func(*options)

type options struct {
	logger        zerolog.Logger
	now           func() time.Time
	duration      time.Duration
	frameInterval time.Duration
	easing        EasingFunc
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock sets the time source used to start tweens.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithDuration overrides AnimationDuration.
func WithDuration(d time.Duration) Option {
	return func(o *options) { o.duration = d }
}

// WithFrameInterval overrides DefaultFrameInterval.
func WithFrameInterval(d time.Duration) Option {
	return func(o *options) { o.frameInterval = d }
}

// WithEasing overrides QuadraticOut.
func WithEasing(fn EasingFunc) Option {
	return func(o *options) { o.easing = fn }
}

// Controller tracks which rows are expanded and animates their heights.
//
// ExpansionState and the interpolated heights are only changed through the
// controller's methods. For any row, an interpolated height takes precedence
// over the static height derived from the expansion flag.
type Controller[T any] struct {
	content ContentFunc[T]
	dims    []RowDimensions

	// expanded is the ExpansionState; a missing entry means collapsed.
	expanded map[int]bool

	// heights holds interpolated heights of rows mid-animation.
	heights map[int]float64

	// expanding records the direction of each in-flight animation.
	expanding map[int]bool

	list      Relayouter
	scheduler *Scheduler

	now      func() time.Time
	duration time.Duration
	easing   EasingFunc
	logger   zerolog.Logger

	// dirtyFrom is the lowest row whose height changed during the current frame, or -1.
	dirtyFrom int
}

// New creates a controller for rows with the given dimensions. content is called
// by RowRenderer to build each row's drawer.
func New[T any](content ContentFunc[T], dims []RowDimensions, opts ...Option) (*Controller[T], error) {
	if content == nil {
		return nil, ErrNilContent
	}
	for i, d := range dims {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}

	o := options{
		logger:   zerolog.Nop(),
		now:      time.Now,
		duration: AnimationDuration,
		easing:   QuadraticOut,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Controller[T]{
		content:   content,
		dims:      append([]RowDimensions(nil), dims...),
		expanded:  make(map[int]bool),
		heights:   make(map[int]float64),
		expanding: make(map[int]bool),
		scheduler: NewScheduler(o.frameInterval),
		now:       o.now,
		duration:  o.duration,
		easing:    o.easing,
		logger:    o.logger,
		dirtyFrom: -1,
	}, nil
}

// SetListRef stores the list the controller asks for relayouts. Until it is
// called, relayout requests are dropped.
func (c *Controller[T]) SetListRef(list Relayouter) {
	c.list = list
}

// Len returns the number of rows with dimensions.
func (c *Controller[T]) Len() int {
	return len(c.dims)
}

// Dimensions returns the dimensions of the row at index.
func (c *Controller[T]) Dimensions(index int) (RowDimensions, error) {
	if err := c.checkIndex(index); err != nil {
		return RowDimensions{}, err
	}
	return c.dims[index], nil
}

// Expanded reports the ExpansionState of the row at index.
func (c *Controller[T]) Expanded(index int) bool {
	return c.expanded[index]
}

// ExpansionState returns a copy of the expanded flags of every row toggled so far.
func (c *Controller[T]) ExpansionState() map[int]bool {
	return maps.Clone(c.expanded)
}

// ExpandedCount returns the number of rows currently expanded.
func (c *Controller[T]) ExpandedCount() int {
	n := 0
	for _, v := range c.expanded {
		if v {
			n++
		}
	}
	return n
}

// Animating reports whether any row is mid-animation.
func (c *Controller[T]) Animating() bool {
	return c.scheduler.Active() > 0
}

// AnimatingRow reports whether the row at index is mid-animation.
func (c *Controller[T]) AnimatingRow(index int) bool {
	_, ok := c.scheduler.Get(index)
	return ok
}

// Scheduler returns the scheduler driving the controller's animations.
func (c *Controller[T]) Scheduler() *Scheduler {
	return c.scheduler
}

// RowHeight returns the height of the row at index: its interpolated height if
// it is animating, otherwise its expanded or collapsed height. It panics if the
// row has no dimensions.
func (c *Controller[T]) RowHeight(index int) int {
	d := c.mustDims(index)
	if h, ok := c.heights[index]; ok {
		return int(math.Round(h))
	}
	return d.HeightFor(c.expanded[index])
}

// RowRenderer renders the row described by props with its drawer. It panics if
// the row has no dimensions.
func (c *Controller[T]) RowRenderer(props listview.RowProps[T]) string {
	d := c.mustDims(props.Index)
	return RenderRow(RowView[T]{
		Item:            props.Item,
		Columns:         props.Columns,
		Content:         c.content(props),
		CollapsedHeight: d.CollapsedHeight,
		ExpandedHeight:  d.ExpandedHeight,
		Expanded:        c.expanded[props.Index],
		Style:           props.Style,
	})
}

// ToggleDrawer flips the row at index without animation and then asks the list
// to recompute every row. A running animation on the row is cancelled and the
// row snaps to the opposite of the state it was animating towards.
func (c *Controller[T]) ToggleDrawer(index int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}

	next := !c.Target(index)
	if c.cancel(index) {
		c.logger.Debug().Int("row", index).Msg("animation cancelled by instant toggle")
	}
	c.expanded[index] = next

	c.logger.Debug().Int("row", index).Bool("expanded", next).Msg("drawer toggled")
	c.relayout()
	return nil
}

// ToggleDrawerWithAnimation starts animating the row at index towards the
// opposite of its current target state. A collapsed row is marked expanded
// before the animation starts so its drawer content renders while it grows; an
// expanded row is marked collapsed only when its animation completes.
//
// The returned command starts the frame loop; it is nil when the loop is
// already running.
func (c *Controller[T]) ToggleDrawerWithAnimation(index int) (tea.Cmd, error) {
	if err := c.checkIndex(index); err != nil {
		return nil, err
	}

	d := c.dims[index]
	wasExpanded := c.Target(index)
	start := c.currentHeight(index)
	target := float64(d.HeightFor(!wasExpanded))

	if c.cancel(index) {
		c.logger.Debug().Int("row", index).Float64("from", start).Msg("animation interrupted")
	}

	if !wasExpanded {
		c.expanded[index] = true
	}
	c.heights[index] = start
	c.expanding[index] = !wasExpanded

	tw := NewTween(index, start, target, c.now(), c.duration, c.easing).
		OnUpdate(func(v float64) {
			c.heights[index] = v
			c.markDirty(index)
		}).
		OnComplete(func() {
			delete(c.heights, index)
			delete(c.expanding, index)
			if wasExpanded {
				c.expanded[index] = false
			}
			c.markDirty(index)
			c.logger.Debug().Int("row", index).Bool("expanded", !wasExpanded).Msg("animation completed")
		})

	c.logger.Debug().
		Int("row", index).
		Float64("from", start).
		Float64("to", target).
		Msg("animation started")

	cmd := c.scheduler.Add(tw)
	c.relayout(index)
	return cmd, nil
}

// Update advances animations on frame messages addressed to this controller and
// issues one relayout for the frame. Other messages are ignored.
func (c *Controller[T]) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok {
		return nil
	}

	c.dirtyFrom = -1
	cmd, handled := c.scheduler.HandleFrame(frame)
	if !handled {
		return nil
	}
	if c.dirtyFrom >= 0 {
		c.relayout(c.dirtyFrom)
		c.dirtyFrom = -1
	}
	return cmd
}

// Target returns the state the row is at or, mid-animation, heading to.
func (c *Controller[T]) Target(index int) bool {
	if dir, ok := c.expanding[index]; ok {
		return dir
	}
	return c.expanded[index]
}

func (c *Controller[T]) currentHeight(index int) float64 {
	if h, ok := c.heights[index]; ok {
		return h
	}
	return float64(c.dims[index].HeightFor(c.expanded[index]))
}

// cancel stops the row's animation without running its completion.
func (c *Controller[T]) cancel(index int) bool {
	if !c.scheduler.Cancel(index) {
		return false
	}
	delete(c.heights, index)
	delete(c.expanding, index)
	return true
}

func (c *Controller[T]) markDirty(index int) {
	if c.dirtyFrom < 0 || index < c.dirtyFrom {
		c.dirtyFrom = index
	}
}

func (c *Controller[T]) relayout(from ...int) {
	if c.list == nil {
		c.logger.Debug().Msg("relayout skipped: no list reference")
		return
	}
	c.list.RecomputeRowHeights(from...)
}

func (c *Controller[T]) checkIndex(index int) error {
	if index < 0 || index >= len(c.dims) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(c.dims))
	}
	return nil
}

func (c *Controller[T]) mustDims(index int) RowDimensions {
	d, err := c.Dimensions(index)
	if err != nil {
		panic(err)
	}
	return d
}
