// Package snapshot persists a semantic database to disk for offline
// inspection by the CLI. The format is msgpack with a schema version guard;
// writes are atomic (temp file + rename).
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"rivet/internal/db"
)

// Current schema version - increment when the payload format changes.
const schemaVersion uint16 = 1

// payload wraps the database image with versioning metadata.
type payload struct {
	Schema uint16
	Image  *db.Image
}

// Write serializes the database to path, replacing any existing file
// atomically.
func Write(path string, d *db.Database) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if removeErr := os.Remove(f.Name()); removeErr != nil && !os.IsNotExist(removeErr) && err == nil {
			err = removeErr
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload{Schema: schemaVersion, Image: d.Image()}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// Read deserializes a database from path. A schema mismatch is an error, not
// a silent miss: a snapshot the tool cannot interpret should be regenerated.
func Read(path string) (*db.Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var p payload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%s: failed to decode snapshot: %w", path, err)
	}
	if p.Schema != schemaVersion {
		return nil, fmt.Errorf("%s: snapshot schema %d, want %d", path, p.Schema, schemaVersion)
	}
	d, err := db.FromImage(p.Image)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
