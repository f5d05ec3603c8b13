package baa

import (
	"math"
	"testing"

	"github.com/vovakirdan/baamageddon/internal/aabb"
)

func TestStoreOrderAndDestroy(t *testing.T) {
	s := NewStore()
	a := s.Create(TypeWolf, aabb.V(1, 0), 30, "a")
	b := s.Create(TypeDoughnut, aabb.V(2, 0), 30, "b")
	c := s.Create(TypeWolf, aabb.V(3, 0), 30, "c")

	wolves := s.ByType(TypeWolf)
	if len(wolves) != 2 || wolves[0] != a || wolves[1] != c {
		t.Fatalf("ByType(wolf) = %v, want [a c]", wolves)
	}
	if s.FirstOfType(TypeWolf) != a {
		t.Error("FirstOfType should return the oldest wolf")
	}

	s.Destroy(a.ID)
	s.Destroy(a.ID) // second destroy is a no-op
	if s.Get(a.ID) != nil || s.Len() != 2 {
		t.Errorf("after Destroy: Len = %d", s.Len())
	}
	if s.FirstOfType(TypeWolf) != c {
		t.Error("FirstOfType should skip destroyed objects")
	}

	s.DestroyByType(TypeWolf)
	if s.Count(TypeWolf) != 0 || s.Get(b.ID) != b {
		t.Error("DestroyByType removed the wrong objects")
	}

	s.DestroyAll()
	if s.Len() != 0 || len(s.All()) != 0 {
		t.Error("DestroyAll left objects behind")
	}
	if d := s.Create(TypeSheep, aabb.Vec2{}, 50, "d"); d.ID <= c.ID {
		t.Errorf("IDs must keep increasing, got %d after %d", d.ID, c.ID)
	}
}

func TestObjectUpdate(t *testing.T) {
	o := &Object{
		Pos:       aabb.V(10, 20),
		Vel:       aabb.V(1, -2),
		Acc:       aabb.V(0, 0.5),
		RotSpeed:  0.25,
		AnimSpeed: 1,
	}
	o.Update()

	if o.Vel != aabb.V(1, -1.5) {
		t.Errorf("Vel = %+v, want (1,-1.5)", o.Vel)
	}
	if o.Pos != aabb.V(11, 18.5) {
		t.Errorf("Pos = %+v, want (11,18.5)", o.Pos)
	}
	if o.Rotation != 0.25 || o.Frame != 1 {
		t.Errorf("Rotation/Frame = %v/%v", o.Rotation, o.Frame)
	}
}

func TestSetDirection(t *testing.T) {
	o := &Object{}
	o.SetDirection(16, math.Pi/2)
	if math.Abs(o.Vel.X) > 1e-9 || math.Abs(o.Vel.Y-16) > 1e-9 {
		t.Errorf("Vel = %+v, want (0,16)", o.Vel)
	}
}

func TestColliding(t *testing.T) {
	tests := []struct {
		name string
		dist float64
		want bool
	}{
		{"overlapping", 79, true},
		{"touching", 80, false},
		{"apart", 81, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Object{Pos: aabb.V(0, 0), Radius: 50}
			b := &Object{Pos: aabb.V(tt.dist, 0), Radius: 30}
			if got := Colliding(a, b); got != tt.want {
				t.Errorf("Colliding at %v = %v, want %v", tt.dist, got, tt.want)
			}
		})
	}

	if Colliding(nil, &Object{}) {
		t.Error("nil objects never collide")
	}
}

func TestSetSpriteKeepsFrameForSameSprite(t *testing.T) {
	o := &Object{Sprite: "x", Frame: 3}
	o.SetSprite("x", 1)
	if o.Frame != 3 || o.AnimSpeed != 1 {
		t.Errorf("same sprite: Frame=%v AnimSpeed=%v", o.Frame, o.AnimSpeed)
	}
	o.SetSprite("y", 0.5)
	if o.Frame != 0 || o.Sprite != "y" {
		t.Errorf("new sprite: Frame=%v Sprite=%q", o.Frame, o.Sprite)
	}
}
