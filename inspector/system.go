package inspector

import (
	"log/slog"

	"github.com/plus3/ooftn-inspector/ecs"
)

// Panel is a window drawn once per frame against the shared State.
// Inspector, HierarchyBrowser, EntityBrowser and StatsPanel are panels.
type Panel interface {
	Draw(ctx *Context, state *State)
}

// System draws its panels every frame as part of the ECS schedule. The
// State singleton is created on first use.
type System struct {
	UI     UI
	Logger *slog.Logger
	Panels []Panel

	State ecs.Singleton[State]
}

// NewSystem creates a System drawing panels in order.
func NewSystem(ui UI, logger *slog.Logger, panels ...Panel) *System {
	return &System{UI: ui, Logger: logger, Panels: panels}
}

func (s *System) Execute(frame *ecs.UpdateFrame) {
	state := s.State.Get()
	if state == nil {
		state = ecs.NewSingleton[State](frame.Storage).Get()
	}

	ctx := NewContext(s.UI, frame.Storage, frame.Commands, s.Logger)
	ctx.DeltaTime = frame.DeltaTime
	for _, panel := range s.Panels {
		panel.Draw(ctx, state)
	}
}
