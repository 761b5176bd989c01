package core

// Advancer is the engine surface the driver schedules.
type Advancer interface {
	AdvanceOneGeneration()
}

// Driver decouples the simulation rate from the render rate. Tick is called
// once per rendered frame; the engine advances at most maxFPS times a second.
type Driver struct {
	engine Advancer
	step   *FixedStep
	ticks  int
	steps  int
}

// NewDriver wires an engine to a throttle running at maxFPS generations per
// second.
func NewDriver(engine Advancer, maxFPS int, clock Clock) *Driver {
	return &Driver{engine: engine, step: NewFixedStep(maxFPS, clock)}
}

// Tick advances the engine when a generation is due and reports whether it
// did. The caller renders regardless.
func (d *Driver) Tick() bool {
	d.ticks++
	if !d.step.ShouldStep() {
		return false
	}
	d.engine.AdvanceOneGeneration()
	d.steps++
	return true
}

// SetFPS changes the maximum generations per second.
func (d *Driver) SetFPS(fps int) { d.step.SetRate(fps) }

// Restart makes the next Tick eligible immediately, e.g. after unpausing.
func (d *Driver) Restart() { d.step.Reset() }

// Stats returns the number of ticks seen and generations requested.
func (d *Driver) Stats() (ticks, steps int) { return d.ticks, d.steps }
