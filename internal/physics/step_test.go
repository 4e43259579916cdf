package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

const frame = 1.0 / 60.0

func TestStepLandsOnGround(t *testing.T) {
	player := NewBody("Player", core.V(0, -200), core.V(100, 100))
	ground := NewBody("Ground", core.V(-800, 0), core.V(1600, 300))
	obstacles := []*Body{player, ground}
	var st PlayerState
	p := DefaultParams()

	landed := -1
	for i := 0; i < 120; i++ {
		res := Step(player, &st, obstacles, Input{}, frame, p)
		if res.Grounded {
			landed = i
			break
		}
		if st.Velocity.Y <= 0 && i > 0 {
			t.Fatalf("frame %d: airborne player should be accelerating down, vy=%f", i, st.Velocity.Y)
		}
	}

	if landed < 0 {
		t.Fatal("player never landed")
	}
	if !st.Grounded {
		t.Error("player should be grounded after landing")
	}
	if st.Velocity.Y != 0 {
		t.Errorf("vertical velocity after landing = %f, expected exactly 0", st.Velocity.Y)
	}
	if math.Abs(player.Bottom()) > 1e-9 {
		t.Errorf("player bottom = %g, expected 0", player.Bottom())
	}
	if player.X() != 0 {
		t.Errorf("player drifted horizontally to %g", player.X())
	}
}

func TestStepMovingLeftIntoWall(t *testing.T) {
	player := NewBody("Player", core.V(0, 0), core.V(100, 100))
	wall := NewBody("Wall", core.V(-100, -250), core.V(100, 600))
	var st PlayerState

	res := Step(player, &st, []*Body{wall}, Input{Left: true}, frame, DefaultParams())

	if len(res.Contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(res.Contacts))
	}
	// The player's left edge meets the wall's right face. Side names the
	// obstacle face, so a hit described as "moving left into a wall, side
	// Left" is reported here as SideRight: the shallowest penetration is
	// the wall's right edge minus the player's x.
	if res.Contacts[0].Side != SideRight {
		t.Errorf("side = %s, expected Right", res.Contacts[0].Side)
	}
	if st.Velocity.X != 0 {
		t.Errorf("horizontal velocity = %f, expected 0", st.Velocity.X)
	}
	if player.X() != wall.Right() {
		t.Errorf("player left edge = %g, expected wall right edge %g", player.X(), wall.Right())
	}
}

func TestStepMovingRightIntoWall(t *testing.T) {
	player := NewBody("Player", core.V(0, 0), core.V(100, 100))
	wall := NewBody("Wall", core.V(100, -250), core.V(100, 600))
	var st PlayerState

	res := Step(player, &st, []*Body{wall}, Input{Right: true}, frame, DefaultParams())

	if len(res.Contacts) != 1 || res.Contacts[0].Side != SideLeft {
		t.Fatalf("contacts = %+v, expected one Left contact", res.Contacts)
	}
	if st.Velocity.X != 0 {
		t.Errorf("horizontal velocity = %f, expected 0", st.Velocity.X)
	}
	if player.Right() != wall.X() {
		t.Errorf("player right edge = %g, expected %g", player.Right(), wall.X())
	}
}

func TestStepHeadBump(t *testing.T) {
	player := NewBody("Player", core.V(0, 0), core.V(100, 100))
	ceiling := NewBody("Ceiling", core.V(-500, -300), core.V(1000, 300))
	st := PlayerState{Velocity: core.V(0, -600)}

	res := Step(player, &st, []*Body{ceiling}, Input{}, frame, DefaultParams())

	if len(res.Contacts) != 1 || res.Contacts[0].Side != SideBottom || !res.Contacts[0].Applied {
		t.Fatalf("contacts = %+v, expected one applied Bottom contact", res.Contacts)
	}
	if player.Y() != ceiling.Bottom() {
		t.Errorf("player top = %g, expected %g", player.Y(), ceiling.Bottom())
	}
	if st.Grounded {
		t.Error("head bump must not ground the player")
	}
	// Bump zeroes vy, then gravity applies for the airborne frame.
	if want := DefaultParams().Gravity * frame; math.Abs(st.Velocity.Y-want) > 1e-9 {
		t.Errorf("vy = %f, expected %f", st.Velocity.Y, want)
	}
}

func TestStepCorrectionGatedByVerticalVelocity(t *testing.T) {
	t.Run("top ignored while rising", func(t *testing.T) {
		player := NewBody("Player", core.V(0, 0), core.V(100, 100))
		ground := NewBody("Ground", core.V(-500, 95), core.V(1000, 100))
		st := PlayerState{Velocity: core.V(0, -60)}

		res := Step(player, &st, []*Body{ground}, Input{}, frame, DefaultParams())

		if len(res.Contacts) != 1 || res.Contacts[0].Side != SideTop {
			t.Fatalf("contacts = %+v, expected one Top contact", res.Contacts)
		}
		if res.Contacts[0].Applied || st.Grounded {
			t.Error("rising player must not land")
		}
		if math.Abs(player.Y()+1) > 1e-9 {
			t.Errorf("player y = %g, expected -1 (no snap)", player.Y())
		}
	})

	t.Run("bottom ignored while falling", func(t *testing.T) {
		player := NewBody("Player", core.V(0, 0), core.V(100, 100))
		ceiling := NewBody("Ceiling", core.V(-500, -295), core.V(1000, 300))
		st := PlayerState{Velocity: core.V(0, 60)}

		res := Step(player, &st, []*Body{ceiling}, Input{}, frame, DefaultParams())

		if len(res.Contacts) != 1 || res.Contacts[0].Side != SideBottom {
			t.Fatalf("contacts = %+v, expected one Bottom contact", res.Contacts)
		}
		if res.Contacts[0].Applied {
			t.Error("falling player must not be snapped below the ceiling")
		}
		if math.Abs(player.Y()-1) > 1e-9 {
			t.Errorf("player y = %g, expected 1 (no snap)", player.Y())
		}
	})
}

func TestStepJumpFromGround(t *testing.T) {
	player := NewBody("Player", core.V(0, 0), core.V(100, 100))
	ground := NewBody("Ground", core.V(-500, 99), core.V(1000, 100))
	var st PlayerState
	p := DefaultParams()

	res := Step(player, &st, []*Body{ground}, Input{Up: true}, frame, p)

	if !res.Grounded || !res.Jumped {
		t.Fatalf("result = %+v, expected grounded jump", res)
	}
	if st.Velocity.Y != p.JumpSpeed {
		t.Errorf("vy = %f, expected %f", st.Velocity.Y, p.JumpSpeed)
	}

	// In the air, holding up does nothing but gravity.
	res = Step(player, &st, []*Body{ground}, Input{Up: true}, frame, p)
	if res.Grounded || res.Jumped {
		t.Errorf("second step = %+v, expected airborne", res)
	}
	if want := p.JumpSpeed + p.Gravity*frame; st.Velocity.Y != want {
		t.Errorf("vy = %f, expected %f", st.Velocity.Y, want)
	}
}

func TestStepLeftWinsTie(t *testing.T) {
	player := NewBody("Player", core.V(0, 0), core.V(10, 10))
	var st PlayerState

	Step(player, &st, nil, Input{Left: true, Right: true}, 0, DefaultParams())

	if st.Velocity.X != -600 {
		t.Errorf("vx = %f, expected -600 (left wins)", st.Velocity.X)
	}
}

func TestStepFrictionGroundedVsAirborne(t *testing.T) {
	p := DefaultParams()

	air := NewBody("Player", core.V(0, -500), core.V(10, 10))
	airSt := PlayerState{Velocity: core.V(300, 0)}
	Step(air, &airSt, nil, Input{}, frame, p)
	if want := 300 - p.AirFriction*frame; math.Abs(airSt.Velocity.X-want) > 1e-9 {
		t.Errorf("airborne vx = %f, expected %f", airSt.Velocity.X, want)
	}

	ground := NewBody("Ground", core.V(-500, 10), core.V(1000, 100))
	onGround := NewBody("Player", core.V(0, 0.5), core.V(10, 10))
	groundSt := PlayerState{Velocity: core.V(0, 0)}
	Step(onGround, &groundSt, []*Body{ground}, Input{}, frame, p)
	if !groundSt.Grounded {
		t.Fatal("player should be grounded")
	}

	groundSt.Velocity.X = 300
	groundSt.Velocity.Y = 0
	onGround.Move(core.V(0, 0.5))
	Step(onGround, &groundSt, []*Body{ground}, Input{}, frame, p)
	if want := 300 - p.GroundFriction*frame; math.Abs(groundSt.Velocity.X-want) > 1e-9 {
		t.Errorf("grounded vx = %f, expected %f", groundSt.Velocity.X, want)
	}
}

func TestStepObstacleOrderIsDeterministic(t *testing.T) {
	// floor only reaches the player's right edge; the wall's correction
	// pushes the player off it when the wall is resolved first.
	newScene := func() (*Body, *Body, *Body) {
		player := NewBody("Player", core.V(0, 0), core.V(100, 100))
		floor := NewBody("Floor", core.V(95, 97), core.V(205, 100))
		wall := NewBody("Wall", core.V(92, -500), core.V(100, 595))
		return player, floor, wall
	}

	t.Run("floor then wall", func(t *testing.T) {
		player, floor, wall := newScene()
		var st PlayerState
		res := Step(player, &st, []*Body{floor, wall}, Input{}, frame, DefaultParams())

		if len(res.Contacts) != 2 {
			t.Fatalf("expected 2 contacts, got %+v", res.Contacts)
		}
		if res.Contacts[0].Index != 0 || res.Contacts[0].Side != SideTop {
			t.Errorf("first contact = %+v, expected floor Top", res.Contacts[0])
		}
		if res.Contacts[1].Index != 1 || res.Contacts[1].Side != SideLeft {
			t.Errorf("second contact = %+v, expected wall Left", res.Contacts[1])
		}
		if player.Pos() != core.V(-8, -3) || !st.Grounded {
			t.Errorf("player = %v grounded=%v, expected (-8, -3) grounded", player.Pos(), st.Grounded)
		}
	})

	t.Run("wall then floor", func(t *testing.T) {
		player, floor, wall := newScene()
		var st PlayerState
		res := Step(player, &st, []*Body{wall, floor}, Input{}, frame, DefaultParams())

		if len(res.Contacts) != 1 || res.Contacts[0].Index != 0 || res.Contacts[0].Side != SideLeft {
			t.Fatalf("contacts = %+v, expected only the wall", res.Contacts)
		}
		if player.Pos() != core.V(-8, 0) || st.Grounded {
			t.Errorf("player = %v grounded=%v, expected (-8, 0) airborne", player.Pos(), st.Grounded)
		}
	})
}

func TestStepSkipsActorInObstacles(t *testing.T) {
	player := NewBody("Player", core.V(0, 0), core.V(10, 10))
	var st PlayerState
	res := Step(player, &st, []*Body{player}, Input{}, frame, DefaultParams())
	if len(res.Contacts) != 0 {
		t.Errorf("actor collided with itself: %+v", res.Contacts)
	}
}

func TestApplyFriction(t *testing.T) {
	tests := []struct {
		v, amount, want float64
	}{
		{600, 120, 480},
		{-600, 120, -480},
		{50, 120, 0},
		{-50, 120, 0},
		{0, 120, 0},
		{10, 0, 10},
		{10, -5, 5},
	}
	for _, tc := range tests {
		if got := ApplyFriction(tc.v, tc.amount); got != tc.want {
			t.Errorf("ApplyFriction(%g, %g) = %g, expected %g", tc.v, tc.amount, got, tc.want)
		}
	}
}

func TestApplyFrictionNeverFlipsOrGrows(t *testing.T) {
	for _, v := range []float64{-900, -600, -0.5, 0, 0.5, 1, 37, 600, 1e6} {
		for _, amt := range []float64{0, 0.1, 30, 120, 600, 1e7} {
			got := ApplyFriction(v, amt)
			if math.Abs(got) > math.Abs(v) {
				t.Errorf("ApplyFriction(%g, %g) = %g grew", v, amt, got)
			}
			if got != 0 && math.Signbit(got) != math.Signbit(v) {
				t.Errorf("ApplyFriction(%g, %g) = %g flipped sign", v, amt, got)
			}
		}
	}

	v := 0.0
	for i := 0; i < 10; i++ {
		v = ApplyFriction(v, 120)
	}
	if v != 0 {
		t.Errorf("friction on zero velocity drifted to %g", v)
	}
}
