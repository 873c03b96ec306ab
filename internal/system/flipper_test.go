// internal/system/flipper_test.go
package system

import (
	"math"
	"testing"

	"github.com/clonkbot/neon-pinball-1a356e/internal/component"
	"github.com/clonkbot/neon-pinball-1a356e/internal/config"
	"github.com/clonkbot/neon-pinball-1a356e/internal/interfaces"
)

func TestFlipperTargetFollowsInput(t *testing.T) {
	tests := []struct {
		name     string
		heldLeft bool
		heldRight bool
	}{
		{"nothing held", false, false},
		{"left held", true, false},
		{"right held", false, true},
		{"both held", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := newTestWorld()
			in := newFakeInput()
			in.held[interfaces.ActionLeftFlipper] = tt.heldLeft
			in.held[interfaces.ActionRightFlipper] = tt.heldRight
			sys := NewFlipperSystem(world, in)

			sys.Update()

			for _, f := range world.Flippers {
				held := tt.heldLeft
				if f.Side == component.FlipperRight {
					held = tt.heldRight
				}
				want := f.Rest
				if held {
					want = f.Swung
				}
				if f.Target != want {
					t.Errorf("side %v: target = %v, want %v", f.Side, f.Target, want)
				}
			}
		})
	}
}

func TestFlipperEasesTowardTarget(t *testing.T) {
	world := newTestWorld()
	in := newFakeInput()
	in.held[interfaces.ActionLeftFlipper] = true
	sys := NewFlipperSystem(world, in)

	left := world.Flippers[0]
	start := left.Angle

	sys.Update()

	want := start + (left.Swung-start)*config.FlipperSpeed
	if math.Abs(left.Angle-want) > 1e-9 {
		t.Errorf("angle after one tick = %v, want %v", left.Angle, want)
	}

	// Приближение экспоненциальное: за 30 тиков угол почти у цели,
	// но точно её не достигает.
	for i := 0; i < 30; i++ {
		sys.Update()
	}
	if math.Abs(left.Angle-left.Swung) > 0.001 {
		t.Errorf("angle %v did not converge to swung %v", left.Angle, left.Swung)
	}
	if left.Angle == left.Swung {
		t.Error("easing must never land exactly on the target")
	}
}

func TestFlipperRelaxesWhenReleased(t *testing.T) {
	world := newTestWorld()
	in := newFakeInput()
	in.held[interfaces.ActionRightFlipper] = true
	sys := NewFlipperSystem(world, in)

	for i := 0; i < 30; i++ {
		sys.Update()
	}
	in.held[interfaces.ActionRightFlipper] = false
	for i := 0; i < 30; i++ {
		sys.Update()
	}

	right := world.Flippers[1]
	if math.Abs(right.Angle-right.Rest) > 0.001 {
		t.Errorf("released flipper at %v, want near rest %v", right.Angle, right.Rest)
	}
}
