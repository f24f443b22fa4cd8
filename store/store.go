package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/vamp-arena/component"
)

var (
	// ErrNoSnapshot is returned when a profile has never been saved
	ErrNoSnapshot = errors.New("no saved snapshot")
	// ErrInvalidProfile rejects names that would escape the store directory
	ErrInvalidProfile = errors.New("invalid profile name")
)

// formatVersion is written ahead of every snapshot
const formatVersion = 1

var profilePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// record is the on-disk envelope
type record struct {
	Version  int                `msgpack:"v"`
	Snapshot component.Snapshot `msgpack:"snapshot"`
}

// Store keeps one msgpack snapshot file per profile
type Store struct {
	Dir string
}

// New creates a store rooted at dir, creating it if needed
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &Store{Dir: dir}, nil
}

func (s *Store) path(profile string) (string, error) {
	if !profilePattern.MatchString(profile) {
		return "", fmt.Errorf("%w: %q", ErrInvalidProfile, profile)
	}
	return filepath.Join(s.Dir, profile+".sav"), nil
}

// Save writes the snapshot atomically through a temp file and rename
func (s *Store) Save(profile string, snap component.Snapshot) error {
	path, err := s.path(profile)
	if err != nil {
		return err
	}

	data, err := msgpack.Marshal(&record{Version: formatVersion, Snapshot: snap})
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(s.Dir, profile+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Load reads and normalizes the profile's snapshot
func (s *Store) Load(profile string) (component.Snapshot, error) {
	path, err := s.path(profile)
	if err != nil {
		return component.Snapshot{}, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return component.Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return component.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}

	var rec record
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return component.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if rec.Version != formatVersion {
		return component.Snapshot{}, fmt.Errorf("snapshot version %d unsupported", rec.Version)
	}

	rec.Snapshot.Normalize()
	return rec.Snapshot, nil
}

// Delete removes a profile's snapshot, absent is not an error
func (s *Store) Delete(profile string) error {
	path, err := s.path(profile)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}
