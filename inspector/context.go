package inspector

import (
	"fmt"
	"log/slog"

	"github.com/plus3/ooftn-inspector/components"
	"github.com/plus3/ooftn-inspector/ecs"
)

// Context is handed to every control and inspector during a draw pass.
// Storage is only read; all mutations go through Commands.
type Context struct {
	UI        UI
	Storage   *ecs.Storage
	Commands  *ecs.Commands
	Logger    *slog.Logger
	DeltaTime float64
}

// NewContext builds a draw context for one frame.
func NewContext(ui UI, storage *ecs.Storage, commands *ecs.Commands, logger *slog.Logger) *Context {
	return &Context{
		UI:       ui,
		Storage:  storage,
		Commands: commands,
		Logger:   logger,
	}
}

func (c *Context) log() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// EntityLabel returns the display name of an entity: its components.Named
// name when present, otherwise "Entity <index>/<generation>".
func EntityLabel(storage *ecs.Storage, id ecs.EntityId) string {
	if id.IsZero() {
		return "None"
	}
	if named := ecs.ReadComponent[components.Named](storage, id); named != nil && named.Name != "" {
		return named.Name
	}
	return fmt.Sprintf("Entity %d/%d", id.Index(), id.Generation())
}

// Resource returns the storage singleton of type T, or nil when absent.
func Resource[T any](ctx *Context) *T {
	var out *T
	if !ctx.Storage.ReadSingleton(&out) {
		return nil
	}
	return out
}
