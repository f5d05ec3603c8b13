package level

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	Name    string       `yaml:"name"`
	Objects []YAMLObject `yaml:"objects"`
}

// YAMLObject represents a single placed object in YAML format.
type YAMLObject struct {
	Type   string  `yaml:"type"` // sheep, island, ... (TYPE_ prefix optional)
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Sprite string  `yaml:"sprite,omitempty"`
}

// ParseYAML parses a YAML level file. Unknown types are skipped; a missing
// sprite falls back to the kind's default.
func ParseYAML(data []byte) (Level, []Skipped, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	lvl := Level{Name: yl.Name}
	var skipped []Skipped
	for i, o := range yl.Objects {
		kind, ok := ParseKind(o.Type)
		if !ok {
			skipped = append(skipped, Skipped{Line: i + 1, Type: o.Type})
			continue
		}
		sprite := o.Sprite
		if sprite == "" {
			sprite = kind.DefaultSprite()
		}
		lvl.Objects = append(lvl.Objects, Object{Kind: kind, X: o.X, Y: o.Y, Sprite: sprite})
	}
	return lvl, skipped, nil
}

// MarshalYAML encodes a level as YAML with lower-case type names.
func MarshalYAML(lvl Level) ([]byte, error) {
	yl := YAMLLevel{Name: lvl.Name, Objects: make([]YAMLObject, 0, len(lvl.Objects))}
	for _, o := range lvl.Objects {
		yl.Objects = append(yl.Objects, YAMLObject{
			Type:   yamlTypeName(o.Kind),
			X:      o.X,
			Y:      o.Y,
			Sprite: o.Sprite,
		})
	}
	data, err := yaml.Marshal(yl)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

func yamlTypeName(k Kind) string {
	name := k.String()
	if len(name) > len("TYPE_") {
		name = name[len("TYPE_"):]
	}
	return strings.ToLower(name)
}
