package life

import "trail-life/pkg/core"

// Parameters reports the values shown on the HUD.
func (e *Engine) Parameters() core.ParameterSnapshot {
	alive, trailing := e.Population()
	v := e.viewport
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				core.StringParam("state", "State", e.state.String()),
				core.IntParam("generation", "Generation", e.generation),
				core.IntParam("alive", "Alive", alive),
				core.IntParam("trailing", "Trailing", trailing),
				core.IntParam("history", "History", len(e.history)),
			},
		},
		{
			Name: "View",
			Params: []core.Parameter{
				core.IntParam("cell", "Cell size", v.CellSize),
				core.FloatParam("pan_x", "Pan X", v.OffsetX),
				core.FloatParam("pan_y", "Pan Y", v.OffsetY),
			},
		},
	}}
}
