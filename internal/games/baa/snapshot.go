package baa

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Snapshot contains the simulation state that matters for determinism checks.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick          int
	Score         int
	Play          int
	Sheep         int
	Direction     int
	JumpTime      int
	Jumping       bool
	WolfLatched   bool
	Complete      bool
	DoughnutsLeft int
	CameraX       float64
	CameraY       float64

	// Each object is 10 values: Type, X, Y, VX, VY, AX, AY, Frame, Rotation, ID
	ObjectCount int
	ObjectData  []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          g.tick,
		Score:         g.st.Score,
		Play:          int(g.st.Play),
		Sheep:         int(g.st.Sheep),
		Direction:     int(g.st.Direction),
		JumpTime:      g.st.JumpTime,
		Jumping:       g.st.Jumping,
		WolfLatched:   g.st.WolfLatched,
		Complete:      g.st.Complete,
		DoughnutsLeft: g.st.DoughnutsLeft,
		CameraX:       g.camera.X,
		CameraY:       g.camera.Y,
	}
	if g.store == nil {
		return snap
	}

	objects := g.store.All()
	snap.ObjectCount = len(objects)
	snap.ObjectData = make([]float64, 0, len(objects)*10)
	for _, o := range objects {
		snap.ObjectData = append(snap.ObjectData,
			float64(o.Type), o.Pos.X, o.Pos.Y, o.Vel.X, o.Vel.Y, o.Acc.X, o.Acc.Y,
			o.Frame, o.Rotation, float64(o.ID))
	}
	return snap
}

// Hash returns an xxhash digest of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte

	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v)) //#nosec G115 -- hash computation
		_, _ = d.Write(buf[:])
	}
	putFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}
	putBool := func(v bool) {
		if v {
			putInt(1)
		} else {
			putInt(0)
		}
	}

	putInt(snap.Tick)
	putInt(snap.Score)
	putInt(snap.Play)
	putInt(snap.Sheep)
	putInt(snap.Direction)
	putInt(snap.JumpTime)
	putBool(snap.Jumping)
	putBool(snap.WolfLatched)
	putBool(snap.Complete)
	putInt(snap.DoughnutsLeft)
	putFloat(snap.CameraX)
	putFloat(snap.CameraY)
	putInt(snap.ObjectCount)
	for _, v := range snap.ObjectData {
		putFloat(v)
	}

	return d.Sum64()
}
