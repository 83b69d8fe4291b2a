package calendar

import (
	"context"
	"sync"
)

// NoteStore holds the free-text note attached to a date. Saving an empty
// note stores the empty string; there is no delete.
type NoteStore interface {
	Note(ctx context.Context, date Date) (string, bool, error)
	SaveNote(ctx context.Context, date Date, note string) error
	// NotesBetween returns notes for from..to inclusive, keyed by date.
	NotesBetween(ctx context.Context, from Date, to Date) (map[Date]string, error)
}

// MemoryNoteStore keeps notes for the lifetime of the process.
type MemoryNoteStore struct {
	mu    sync.RWMutex
	notes map[Date]string
}

func NewMemoryNoteStore() *MemoryNoteStore {
	return &MemoryNoteStore{notes: make(map[Date]string)}
}

func (store *MemoryNoteStore) Note(_ context.Context, date Date) (string, bool, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	note, ok := store.notes[date]
	return note, ok, nil
}

func (store *MemoryNoteStore) SaveNote(_ context.Context, date Date, note string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.notes[date] = note
	return nil
}

func (store *MemoryNoteStore) NotesBetween(_ context.Context, from Date, to Date) (map[Date]string, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	result := make(map[Date]string)
	for date, note := range store.notes {
		if date.Before(from) || date.After(to) {
			continue
		}
		result[date] = note
	}
	return result, nil
}

func (store *MemoryNoteStore) Len() int {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return len(store.notes)
}
