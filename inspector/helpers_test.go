package inspector_test

import (
	"testing"

	"github.com/plus3/ooftn-inspector/components"
	"github.com/plus3/ooftn-inspector/ecs"
	"github.com/plus3/ooftn-inspector/inspector"
	"github.com/plus3/ooftn-inspector/inspector/fakeui"
	"github.com/stretchr/testify/require"
)

type world struct {
	storage  *ecs.Storage
	commands *ecs.Commands
	ui       *fakeui.UI
	ctx      *inspector.Context
}

func newWorld() *world {
	registry := ecs.NewComponentRegistry()
	components.Register(registry)
	ecs.RegisterComponent[Stats](registry)

	w := &world{
		storage:  ecs.NewStorage(registry),
		commands: ecs.NewCommands(),
		ui:       fakeui.New(),
	}
	w.ctx = inspector.NewContext(w.ui, w.storage, w.commands, nil)
	return w
}

// frame starts a new UI frame, runs draw and checks the UI was left balanced.
func (w *world) frame(t *testing.T, draw func()) {
	t.Helper()
	w.ui.NewFrame()
	draw()
	require.NoError(t, w.ui.Balanced())
}

func (w *world) flush() {
	w.commands.Flush(w.storage)
}

// Stats exercises the derived controls on plain field kinds.
type Stats struct {
	Level   int32   `inspect:"null_to=1"`
	Speed   float64 `inspect:"speed=0.5,null_to=2.5"`
	Visible bool    `inspect:"null_to=true"`
	Title   string  `inspect:"label=title"`
	Flip    components.Flipped
	Target  ecs.EntityId `inspect:"with_component=Camera"`
	Tags    []string
	Secret  int `inspect:"skip"`
	Nested  struct {
		Depth uint8
	}
}
