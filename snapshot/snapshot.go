// Package snapshot manages a JSON file recording the tags of every file in a
// directory, so tag state can be diffed or restored later.
package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sonnes/kid3/core"
)

// Entry is the recorded state of one file.
type Entry struct {
	File      string      `json:"file"`
	Tags      core.Frames `json:"tags"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// NewEntry records the frames read from r.Path under its base name.
func NewEntry(r core.TagReport, at time.Time) Entry {
	return Entry{File: filepath.Base(r.Path), Tags: r.Frames, UpdatedAt: at}
}

// Snapshot holds the entries of one directory.
type Snapshot struct {
	Dir     string  `json:"dir"`
	Entries []Entry `json:"entries"`
}

// ReadFile reads a snapshot from disk. Returns an empty Snapshot if the file
// does not exist.
func ReadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Snapshot{}, nil
	}
	if err != nil {
		return nil, err
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert adds or replaces the entry for entry.File and keeps the entries
// sorted by file name.
func (s *Snapshot) Upsert(entry Entry) {
	for i, e := range s.Entries {
		if e.File == entry.File {
			s.Entries[i] = entry
			return
		}
	}
	s.Entries = append(s.Entries, entry)
	sort.Slice(s.Entries, func(i, j int) bool {
		return s.Entries[i].File < s.Entries[j].File
	})
}

// Lookup returns the entry for file.
func (s *Snapshot) Lookup(file string) (Entry, bool) {
	for _, e := range s.Entries {
		if e.File == file {
			return e, true
		}
	}
	return Entry{}, false
}

// WriteFile writes the snapshot to disk atomically using a temporary file and
// rename.
func (s *Snapshot) WriteFile(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, path)
}
