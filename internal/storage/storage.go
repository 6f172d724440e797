// Package storage persists the address book as a versioned JSON snapshot.
// The on-disk schema is deliberately decoupled from the in-memory types so
// persisted data outlives any particular implementation. Loads rebuild every
// record through the domain constructors, which guarantees the reconstructed
// book satisfies the same invariants as a freshly built one.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// snapshot is the top-level on-disk document.
type snapshot struct {
	Version  int       `json:"version"`
	Contacts []contact `json:"contacts"`
}

// contact is one persisted record: canonical digit strings for phones and
// the DD.MM.YYYY rendering for the birthday.
type contact struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// Save writes the book to path atomically: the snapshot is written to a
// temporary file in the same directory and renamed over the target, with
// owner-only permissions since the data is personal.
func Save(path string, ab *book.AddressBook) error {
	snap := snapshot{Version: config.SnapshotVersion, Contacts: []contact{}}
	for _, rec := range ab.Records() {
		c := contact{Name: rec.Name(), Phones: []string{}}
		for _, p := range rec.Phones() {
			c.Phones = append(c.Phones, p.String())
		}
		if b, ok := rec.Birthday(); ok {
			c.Birthday = b.String()
		}
		snap.Contacts = append(snap.Contacts, c)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotEncode, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}
	tmpName := tmp.Name()
	// Best effort cleanup; after a successful rename this is a no-op.
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}
	if err := tmp.Chmod(config.FilePermUserRW); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}

	slog.Debug(config.MsgSnapshotSaved,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyPath, path,
		config.LogKeyCount, ab.Len(),
	)
	return nil
}

// Load reconstructs an address book from path. A missing file yields an
// empty book, matching a first run. Anything the domain constructors reject
// fails the load: a snapshot that cannot satisfy the invariants is corrupt.
func Load(path string, today time.Time) (*book.AddressBook, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug(config.MsgSnapshotEmpty,
			config.LogKeyComponent, config.CompStorage,
			config.LogKeyPath, path,
		)
		return book.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSnapshotDecode, err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSnapshotDecode, err)
	}
	if snap.Version != config.SnapshotVersion {
		return nil, fmt.Errorf("%s: %d", config.ErrSnapshotVersion, snap.Version)
	}

	ab := book.New()
	for _, c := range snap.Contacts {
		rec, err := book.NewRecord(c.Name)
		if err != nil {
			return nil, fmt.Errorf("%s (%q): %w", config.ErrSnapshotRecord, c.Name, err)
		}
		for _, raw := range c.Phones {
			if err := rec.AddPhone(raw); err != nil {
				return nil, fmt.Errorf("%s (%q): %w", config.ErrSnapshotRecord, c.Name, err)
			}
		}
		if c.Birthday != "" {
			b, err := book.NewBirthday(c.Birthday, today)
			if err != nil {
				return nil, fmt.Errorf("%s (%q): %w", config.ErrSnapshotRecord, c.Name, err)
			}
			if err := rec.SetBirthday(b); err != nil {
				return nil, fmt.Errorf("%s (%q): %w", config.ErrSnapshotRecord, c.Name, err)
			}
		}
		ab.Add(rec)
	}

	slog.Debug(config.MsgSnapshotLoaded,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyPath, path,
		config.LogKeyCount, ab.Len(),
	)
	return ab, nil
}
