package systems

import (
	"testing"

	"github.com/automoto/dune-runner/components"
	"github.com/automoto/dune-runner/config"
	"github.com/solarlune/resolv"
)

func TestAttachmentMode(t *testing.T) {
	t.Cleanup(config.Reset)

	playerObj := resolv.NewObject(0, 0, 20, 40)
	platObj := resolv.NewObject(0, 40, 100, 16)
	otherObj := resolv.NewObject(200, 40, 100, 16)

	vertical := &components.MovingPlatformData{Vertical: true, AxisDistance: 50, Speed: 30}
	horizontal := &components.MovingPlatformData{AxisDistance: 50, Speed: 30}

	tests := []struct {
		name     string
		mp       *components.MovingPlatformData
		player   func(c *components.ContactData)
		platform func(c *components.ContactData)
		want     Attachment
	}{
		{
			name:     "standing on top",
			mp:       horizontal,
			player:   func(c *components.ContactData) { c.Add(platObj, components.SideDown) },
			platform: func(c *components.ContactData) { c.Add(playerObj, components.SideUp) },
			want:     AttachRiding,
		},
		{
			name:     "standing on a different platform",
			mp:       horizontal,
			player:   func(c *components.ContactData) { c.Add(otherObj, components.SideDown) },
			platform: func(c *components.ContactData) { c.Add(playerObj, components.SideUp) },
			want:     AttachNone,
		},
		{
			name:     "pressing the left face of a vertical platform",
			mp:       vertical,
			player:   func(c *components.ContactData) { c.Add(platObj, components.SideRight) },
			platform: func(c *components.ContactData) { c.Add(playerObj, components.SideLeft) },
			want:     AttachClinging,
		},
		{
			name:     "pressing the right face of a vertical platform",
			mp:       vertical,
			player:   func(c *components.ContactData) { c.Add(platObj, components.SideLeft) },
			platform: func(c *components.ContactData) { c.Add(playerObj, components.SideRight) },
			want:     AttachClinging,
		},
		{
			name:     "side contact with a horizontal platform",
			mp:       horizontal,
			player:   func(c *components.ContactData) { c.Add(platObj, components.SideRight) },
			platform: func(c *components.ContactData) { c.Add(playerObj, components.SideLeft) },
			want:     AttachNone,
		},
		{
			name: "riding wins over clinging",
			mp:   vertical,
			player: func(c *components.ContactData) {
				c.Add(platObj, components.SideDown)
				c.Add(platObj, components.SideRight)
			},
			platform: func(c *components.ContactData) {
				c.Add(playerObj, components.SideUp)
				c.Add(playerObj, components.SideLeft)
			},
			want: AttachRiding,
		},
		{
			name:     "one-sided contact",
			mp:       vertical,
			player:   func(c *components.ContactData) { c.Add(platObj, components.SideDown) },
			platform: func(c *components.ContactData) {},
			want:     AttachNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pc, plc components.ContactData
			tt.player(&pc)
			tt.platform(&plc)
			if got := attachmentMode(tt.mp, &pc, &plc, platObj); got != tt.want {
				t.Errorf("attachmentMode = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyRidingRisingSnapsToTop(t *testing.T) {
	t.Cleanup(config.Reset)

	platObj := resolv.NewObject(0, 98, 100, 16)
	obj := resolv.NewObject(10, 60, 20, 40) // bottom 100, platform already rose by 2
	mp := &components.MovingPlatformData{
		Vertical: true,
		Delta:    components.Vector{Y: -2},
		Velocity: -24,
	}
	var physics components.PhysicsData

	applyRiding(mp, &physics, obj, platObj)

	if obj.Y+obj.H != platObj.Y {
		t.Errorf("rider bottom = %v, want %v", obj.Y+obj.H, platObj.Y)
	}
	if want := config.Platform.RiseVelocityScale * -24; physics.SpeedY != want {
		t.Errorf("SpeedY = %v, want %v", physics.SpeedY, want)
	}
	if obj.X != 10 {
		t.Errorf("vertical-only platform moved rider horizontally to %v", obj.X)
	}
}

func TestApplyRidingDescending(t *testing.T) {
	t.Cleanup(config.Reset)

	platObj := resolv.NewObject(0, 102, 100, 16)
	obj := resolv.NewObject(10, 60, 20, 40)
	mp := &components.MovingPlatformData{
		Vertical: true,
		Delta:    components.Vector{Y: 2},
		Velocity: 24,
	}
	physics := components.PhysicsData{SpeedY: -5}

	applyRiding(mp, &physics, obj, platObj)

	if obj.Y != 62 {
		t.Errorf("rider y = %v, want 62", obj.Y)
	}
	if physics.SpeedY != 24 {
		t.Errorf("SpeedY = %v, want 24", physics.SpeedY)
	}
}

func TestApplyClingingCarriesVerticalOnly(t *testing.T) {
	obj := resolv.NewObject(10, 60, 20, 40)
	mp := &components.MovingPlatformData{
		Vertical:           true,
		HorizontalDistance: 30,
		Delta:              components.Vector{X: 3, Y: -1.5},
	}

	applyClinging(mp, obj)

	if obj.X != 10 || obj.Y != 58.5 {
		t.Errorf("clinging rider at (%v, %v), want (10, 58.5)", obj.X, obj.Y)
	}
}
