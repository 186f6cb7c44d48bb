package store

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/klingon-assistant/klingon"
	"gopkg.in/yaml.v3"
)

// importFile is the layout of a dictionary import file:
//
//	entries:
//	  - entry_name: Sop
//	    part_of_speech: v
//	    definition: eat
type importFile struct {
	Entries []klingon.Record `yaml:"entries"`
}

// ReadYAML decodes dictionary records from r.
func ReadYAML(r io.Reader) ([]klingon.Record, error) {
	var f importFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode dictionary: %w", err)
	}
	for i, rec := range f.Entries {
		if rec.EntryName == "" {
			return nil, fmt.Errorf("entry %d: missing entry_name", i+1)
		}
	}
	return f.Entries, nil
}

// LoadYAML reads dictionary records from the file at path.
func LoadYAML(path string) ([]klingon.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()
	records, err := ReadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Store is a klingon.Store that can also report its size.
type Store interface {
	klingon.Store
	Count(ctx context.Context) (int, error)
}

// Open returns the store described by the arguments: the SQLite database
// at database if it is set, an in-memory store otherwise. A non-empty data
// file is loaded into an in-memory store, or into the database when that
// is still empty. The returned close function releases the database.
func Open(ctx context.Context, database, data string) (Store, func() error, error) {
	var records []klingon.Record
	if data != "" {
		var err error
		if records, err = LoadYAML(data); err != nil {
			return nil, nil, err
		}
	}

	if database == "" {
		return NewMemory(records...), func() error { return nil }, nil
	}

	db := NewSQLite()
	if err := db.Open(database); err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, nil, err
	}
	if len(records) > 0 {
		n, err := db.Count(ctx)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		if n == 0 {
			if err := db.Insert(ctx, records...); err != nil {
				db.Close()
				return nil, nil, err
			}
		}
	}
	return db, db.Close, nil
}
