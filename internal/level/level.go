// Package level reads and writes Baamageddon level files.
//
// A level is an ordered list of placed objects. Order matters: platforms are
// resolved in load order and the editor saves objects in creation order.
package level

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/baamageddon/internal/config"
)

// Kind identifies what a placed object is.
type Kind int

const (
	KindSheep Kind = iota
	KindIsland
	KindDoughnut
	KindSpike
	KindWolf
	KindBush
	KindBlade
	KindFinal
)

var kindNames = [...]string{
	KindSheep:    "TYPE_SHEEP",
	KindIsland:   "TYPE_ISLAND",
	KindDoughnut: "TYPE_DOUGHNUT",
	KindSpike:    "TYPE_SPIKE",
	KindWolf:     "TYPE_WOLF",
	KindBush:     "TYPE_BUSH",
	KindBlade:    "TYPE_BLADE",
	KindFinal:    "TYPE_FINAL",
}

// Kinds returns every kind in editor cycling order.
func Kinds() []Kind {
	return []Kind{KindSheep, KindIsland, KindDoughnut, KindSpike, KindWolf, KindBush, KindBlade, KindFinal}
}

// String returns the record tag used in .lev files.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("TYPE_%d", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a record tag such as TYPE_WOLF back to a Kind.
// The lookup is case-insensitive and the TYPE_ prefix is optional.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s != "" && !strings.HasPrefix(s, "TYPE_") {
		s = "TYPE_" + s
	}
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return 0, false
}

// Variants returns the four sprite choices the editor offers for a kind.
func (k Kind) Variants() [4]string {
	switch k {
	case KindSheep:
		return repeat4(config.SpriteSheepIdleRight)
	case KindIsland:
		return [4]string{config.SpriteIslandA, config.SpriteIslandB, config.SpriteIslandC, config.SpriteIslandD}
	case KindDoughnut:
		return repeat4(config.SpriteDoughnut)
	case KindSpike:
		return repeat4(config.SpriteSpikes)
	case KindWolf:
		return repeat4(config.SpriteWolf)
	case KindBush:
		return repeat4(config.SpriteBush)
	case KindBlade:
		return repeat4(config.SpriteBlade)
	default:
		return repeat4(config.SpriteMarker)
	}
}

// DefaultSprite is the first variant of a kind.
func (k Kind) DefaultSprite() string {
	return k.Variants()[0]
}

func repeat4(s string) [4]string {
	return [4]string{s, s, s, s}
}

// Object is one placed thing in a level.
type Object struct {
	Kind   Kind
	X, Y   float64
	Sprite string
}

// Level is a parsed level file.
type Level struct {
	Name    string
	Path    string
	Objects []Object
}

// Sheep returns the player start.
func (l Level) Sheep() (Object, bool) {
	for _, o := range l.Objects {
		if o.Kind == KindSheep {
			return o, true
		}
	}
	return Object{}, false
}

// Count returns how many objects of kind the level holds.
func (l Level) Count(kind Kind) int {
	n := 0
	for _, o := range l.Objects {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// Validate checks that the level can be played.
func (l Level) Validate() error {
	if _, ok := l.Sheep(); !ok {
		return ErrNoSheep
	}
	return nil
}
