package level

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

//go:embed default.lev
var defaultLev []byte

// DefaultName is the name reported for the built-in level.
const DefaultName = "meadow"

// Default returns the built-in level.
func Default() Level {
	lvl, _, err := ParseLev(defaultLev)
	if err != nil {
		panic(fmt.Sprintf("level: built-in level is broken: %v", err))
	}
	lvl.Name = DefaultName
	return lvl
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".lev", ".yaml", ".yml"}
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root   string
	Logger *log.Logger
}

// NewLoader creates a new level loader. A nil logger discards messages.
func NewLoader(root string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{Root: root, Logger: logger}
}

// LoadFile loads a single level file and names it after the file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	lvl, skipped, err := Parse(data, filepath.Ext(path))
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
			return Level{}, pe
		}
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	for _, s := range skipped {
		l.Logger.Warn("skipping unknown record", "file", path, "line", s.Line, "type", s.Type)
	}

	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	lvl.Path = path
	l.Logger.Debug("level loaded", "file", path, "objects", len(lvl.Objects))
	return lvl, nil
}

// LoadAll recursively scans and loads all level files under Root.
// Unreadable files are logged and skipped. Levels are sorted by name.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		lvl, err := l.LoadFile(path)
		if err != nil {
			l.Logger.Warn("skipping level", "file", path, "err", err)
			return nil
		}
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Name < levels[j].Name
	})
	return levels, nil
}

// Parse routes to the parser for a file extension.
func Parse(data []byte, ext string) (Level, []Skipped, error) {
	switch strings.ToLower(ext) {
	case ".lev", "":
		return ParseLev(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Level{}, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// Marshal encodes a level for a file extension.
func Marshal(lvl Level, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".lev", "":
		return MarshalLev(lvl), nil
	case ".yaml", ".yml":
		return MarshalYAML(lvl)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// Save writes lvl to path in the format its extension names.
func Save(path string, lvl Level) error {
	data, err := Marshal(lvl, filepath.Ext(path))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("level: cannot create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("level: cannot write %s: %w", path, err)
	}
	return nil
}

// Load reads a level from path, or returns the built-in level when path is empty.
func Load(path string, logger *log.Logger) (Level, error) {
	if path == "" {
		return Default(), nil
	}
	return NewLoader(filepath.Dir(path), logger).LoadFile(path)
}

// Equal reports whether two levels hold the same objects in the same order.
func Equal(a, b Level) bool {
	if len(a.Objects) != len(b.Objects) {
		return false
	}
	for i := range a.Objects {
		if a.Objects[i] != b.Objects[i] {
			return false
		}
	}
	return true
}

func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
