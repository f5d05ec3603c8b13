package baa

import (
	"math"
	"slices"

	"github.com/vovakirdan/baamageddon/internal/aabb"
)

// ObjectType identifies what a live object is.
type ObjectType int

const (
	TypeSheep ObjectType = iota
	TypeIsland
	TypeDoughnut
	TypeSprinkle
	TypeSpike
	TypeWolf
	TypeBush
	TypeBlade
	TypeBladeBob
	TypeFinal
)

// Object is a live entity in the world.
// Positions are world pixels at the sprite's center.
type Object struct {
	ID        int
	Type      ObjectType
	Pos       aabb.Vec2
	Vel       aabb.Vec2
	Acc       aabb.Vec2
	Radius    float64
	Sprite    string
	Frame     float64
	AnimSpeed float64
	Rotation  float64
	RotSpeed  float64
}

// Update advances the object by one tick of simple Euler motion.
func (o *Object) Update() {
	o.Vel = o.Vel.Add(o.Acc)
	o.Pos = o.Pos.Add(o.Vel)
	o.Rotation += o.RotSpeed
	o.Frame += o.AnimSpeed
}

// SetSprite changes the sprite, restarting the animation only when it differs.
func (o *Object) SetSprite(name string, animSpeed float64) {
	if o.Sprite != name {
		o.Sprite = name
		o.Frame = 0
	}
	o.AnimSpeed = animSpeed
}

// SetDirection points the velocity along angle (radians) at the given speed.
func (o *Object) SetDirection(speed, angle float64) {
	o.Vel = aabb.V(speed*math.Cos(angle), speed*math.Sin(angle))
}

// Colliding reports whether the collision circles of a and b overlap.
func Colliding(a, b *Object) bool {
	if a == nil || b == nil {
		return false
	}
	d := a.Pos.Sub(b.Pos)
	r := a.Radius + b.Radius
	return d.X*d.X+d.Y*d.Y < r*r
}

// Store owns every live object and hands out stable IDs in creation order.
type Store struct {
	nextID  int
	objects map[int]*Object
	order   []int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{objects: make(map[int]*Object)}
}

// Create adds an object and returns it.
func (s *Store) Create(t ObjectType, pos aabb.Vec2, radius float64, sprite string) *Object {
	o := &Object{ID: s.nextID, Type: t, Pos: pos, Radius: radius, Sprite: sprite}
	s.nextID++
	s.objects[o.ID] = o
	s.order = append(s.order, o.ID)
	return o
}

// Get returns the object with id, or nil.
func (s *Store) Get(id int) *Object {
	return s.objects[id]
}

// All returns every object in creation order.
func (s *Store) All() []*Object {
	out := make([]*Object, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.objects[id])
	}
	return out
}

// ByType returns the objects of type t in creation order.
// The slice is a copy, so destroying objects while iterating it is safe.
func (s *Store) ByType(t ObjectType) []*Object {
	var out []*Object
	for _, id := range s.order {
		if o := s.objects[id]; o.Type == t {
			out = append(out, o)
		}
	}
	return out
}

// FirstOfType returns the oldest object of type t, or nil.
func (s *Store) FirstOfType(t ObjectType) *Object {
	for _, id := range s.order {
		if o := s.objects[id]; o.Type == t {
			return o
		}
	}
	return nil
}

// Count returns how many objects of type t are alive.
func (s *Store) Count(t ObjectType) int {
	n := 0
	for _, o := range s.objects {
		if o.Type == t {
			n++
		}
	}
	return n
}

// Len returns the number of live objects.
func (s *Store) Len() int {
	return len(s.objects)
}

// Destroy removes the object with id. Unknown ids are ignored.
func (s *Store) Destroy(id int) {
	if _, ok := s.objects[id]; !ok {
		return
	}
	delete(s.objects, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

// DestroyByType removes every object of type t.
func (s *Store) DestroyByType(t ObjectType) {
	s.order = slices.DeleteFunc(s.order, func(id int) bool {
		if s.objects[id].Type == t {
			delete(s.objects, id)
			return true
		}
		return false
	})
}

// DestroyAll removes every object. IDs keep increasing.
func (s *Store) DestroyAll() {
	clear(s.objects)
	s.order = s.order[:0]
}
