package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// ErrLevelNotFound is returned when no revision exists for a level name.
var ErrLevelNotFound = errors.New("storage: level not found")

// LevelRevision is one saved copy of a level file.
type LevelRevision struct {
	ID        string
	Name      string
	Checksum  string
	Objects   int
	Content   []byte
	CreatedAt time.Time
}

// Checksum returns the content hash used to spot unchanged saves.
func Checksum(content []byte) string {
	return strconv.FormatUint(xxhash.Sum64(content), 16)
}

// SaveLevelRevision stores content as the newest revision of the named level.
// Saving content identical to the latest revision stores nothing and returns
// the existing revision's ID.
func (s *Store) SaveLevelRevision(name string, content []byte, objects int) (string, error) {
	sum := Checksum(content)

	latest, err := s.LatestLevel(name)
	switch {
	case err == nil && latest.Checksum == sum:
		return latest.ID, nil
	case err != nil && !errors.Is(err, ErrLevelNotFound):
		return "", err
	}

	id := uuid.NewString()
	_, err = s.db.Exec(
		`INSERT INTO level_revisions (id, name, checksum, objects, content)
		 VALUES (?, ?, ?, ?, ?)`,
		id, name, sum, objects, content,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save level revision: %w", err)
	}
	return id, nil
}

// revisionRow is a level_revisions row as the driver returns it.
type revisionRow struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Checksum  string `db:"checksum"`
	Objects   int    `db:"objects"`
	Content   []byte `db:"content"`
	CreatedAt any    `db:"created_at"`
}

func (r revisionRow) revision() LevelRevision {
	return LevelRevision{
		ID:        r.ID,
		Name:      r.Name,
		Checksum:  r.Checksum,
		Objects:   r.Objects,
		Content:   r.Content,
		CreatedAt: parseTime(r.CreatedAt),
	}
}

// LatestLevel returns the newest revision of the named level.
func (s *Store) LatestLevel(name string) (*LevelRevision, error) {
	var row revisionRow
	err := s.db.Get(&row,
		`SELECT id, name, checksum, objects, content, created_at
		 FROM level_revisions
		 WHERE name = ?
		 ORDER BY seq DESC
		 LIMIT 1`,
		name,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrLevelNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level: %w", err)
	}
	rev := row.revision()
	return &rev, nil
}

// LevelRevisions lists the revisions of the named level, newest first.
// Content is left empty; use LatestLevel to fetch a body.
func (s *Store) LevelRevisions(name string) ([]LevelRevision, error) {
	var rows []revisionRow
	err := s.db.Select(&rows,
		`SELECT id, name, checksum, objects, created_at
		 FROM level_revisions
		 WHERE name = ?
		 ORDER BY seq DESC`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level revisions: %w", err)
	}

	revs := make([]LevelRevision, len(rows))
	for i, r := range rows {
		revs[i] = r.revision()
	}
	return revs, nil
}

// LevelNames returns every level name with at least one revision, sorted.
func (s *Store) LevelNames() ([]string, error) {
	var names []string
	if err := s.db.Select(&names, `SELECT DISTINCT name FROM level_revisions ORDER BY name`); err != nil {
		return nil, fmt.Errorf("storage: cannot query level names: %w", err)
	}
	return names, nil
}
