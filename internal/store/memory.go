// Package store holds dictionary record stores: an in-memory map and a
// SQLite database, both fillable from a YAML import file.
package store

import (
	"context"
	"sync"

	"github.com/klingon-assistant/klingon"
)

// Memory is an in-memory store keyed by entry name.
type Memory struct {
	mu     sync.RWMutex
	byName map[string][]klingon.Record
	count  int
	nextID int64
}

// NewMemory returns a Memory holding records.
func NewMemory(records ...klingon.Record) *Memory {
	m := &Memory{byName: make(map[string][]klingon.Record), nextID: 1}
	m.Add(records...)
	return m
}

// Add stores records. Records without an ID are numbered in order.
func (m *Memory) Add(records ...klingon.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range records {
		if r.ID == 0 {
			r.ID = m.nextID
		}
		if r.ID >= m.nextID {
			m.nextID = r.ID + 1
		}
		m.byName[r.EntryName] = append(m.byName[r.EntryName], r)
		m.count++
	}
}

// Lookup implements klingon.Store.
func (m *Memory) Lookup(ctx context.Context, name string) ([]klingon.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	records := m.byName[name]
	if len(records) == 0 {
		return nil, nil
	}
	return append([]klingon.Record(nil), records...), nil
}

// Count returns the number of records stored.
func (m *Memory) Count(context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.count, nil
}
