package scene

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/quillmont/genstore"
)

// ExampleScene demonstrates the recommended pattern for driving a scene off
// generational keys:
// 1. One World owns the key lifecycle and all component columns.
// 2. Systems iterate packed columns directly via ColumnOf.
// 3. Structural changes made during iteration go through a CommandBuffer and
//    apply afterwards, so no column is reshaped under an active loop.
func ExampleScene() {
	logger := zerolog.New(os.Stderr).Level(zerolog.InfoLevel)
	world := genstore.NewWorld[Entity](genstore.WithLogger[Entity](logger))

	player, err := world.Create()
	if err != nil {
		panic(err)
	}
	genstore.Put(world.Table(), player, Transform{X: 10, Y: 20})
	genstore.Put(world.Table(), player, Sprite{Texture: "hero.png", Layer: 1})
	genstore.Put(world.Table(), player, Velocity{DX: 1})

	for i := 0; i < 3; i++ {
		MoveAll(world)
	}

	// Deferred structural changes: spawn one object, despawn another.
	buf := genstore.NewCommandBuffer[Entity]()
	var crate genstore.Key[Entity]
	buf.Push(genstore.NewCreateCommand(&crate))
	buf.Push(genstore.NewDestroyCommand(player))
	if err := world.ApplyCommands(buf.Drain()); err != nil {
		panic(err)
	}

	// The player key is stale now; every access through it is absorbed.
	if _, ok := genstore.Get[Transform](world.Table(), player); !ok {
		fmt.Println("player is gone")
	}

	stats := world.Stats()
	fmt.Printf("live objects: %d (crate alive: %v), components: %d\n",
		stats.LiveKeys, world.IsAlive(crate), stats.Components)
}

// MoveAll advances every object that has both a Transform and a Velocity.
// Iteration runs over the packed Velocity column and does point lookups into
// Transform, the cheaper direction when Velocity is the sparser of the two.
func MoveAll(world *genstore.World[Entity]) {
	velocities, ok := genstore.ColumnOf[Velocity](world.Table())
	if !ok {
		return
	}
	velocities.Iterate(func(k genstore.Key[Entity], v Velocity) bool {
		if t, ok := genstore.GetMut[Transform](world.Table(), k); ok {
			t.X += v.DX
			t.Y += v.DY
		}
		return true
	})
}
