package mandala

import (
	"sync/atomic"

	"github.com/iburimskiy/mandala-cloud/internal/scheduler"
)

// Animator mutates the stage for the next frame.
type Animator interface {
	Advance()
}

// Driver is the render loop: every scheduled frame it advances the
// animator, renders the stage and requests the next frame.
type Driver struct {
	stage    *Stage
	animator Animator
	sched    scheduler.Scheduler

	// OnFrame, when set, runs after each rendered frame with the frame count.
	OnFrame func(frames uint64)

	frames  atomic.Uint64
	visible int
	paused  bool
	started bool
}

func NewDriver(stage *Stage, animator Animator, sched scheduler.Scheduler) *Driver {
	return &Driver{stage: stage, animator: animator, sched: sched}
}

// Start requests the first frame. Later calls do nothing.
func (d *Driver) Start() {
	if d.started {
		return
	}
	d.started = true
	d.sched.RequestFrame(d.frame)
}

func (d *Driver) frame() {
	if !d.paused {
		d.animator.Advance()
	}
	d.visible = d.stage.Render()
	n := d.frames.Add(1)
	if d.OnFrame != nil {
		d.OnFrame(n)
	}
	d.sched.RequestFrame(d.frame)
}

// Frames is safe to call from other goroutines.
func (d *Driver) Frames() uint64 { return d.frames.Load() }

// Visible is the number of points drawn in the last frame.
func (d *Driver) Visible() int { return d.visible }

// TogglePause freezes the animation; frames keep rendering so resizes
// still show up.
func (d *Driver) TogglePause() bool {
	d.paused = !d.paused
	return d.paused
}

func (d *Driver) Paused() bool { return d.paused }
