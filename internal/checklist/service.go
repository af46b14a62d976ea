// Package checklist runs every user action against the collection as a
// mutate-then-persist transaction.
package checklist

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/youruser/surgechecklist/internal/cards"
)

type Service struct {
	mu    sync.Mutex
	store *cards.Store
	coll  *cards.Collection
	log   *slog.Logger
}

// Open loads the collection and writes it back once, so a missing data
// file is materialised with the default document.
func Open(store *cards.Store, log *slog.Logger) (*Service, error) {
	c, err := store.Load()
	if err != nil {
		return nil, err
	}
	s := &Service{store: store, coll: c, log: log}
	if err := store.Save(c); err != nil {
		return nil, err
	}
	log.Info("collection loaded", "path", store.Path(), "sets", len(c.Sets), "cards", len(c.Cards))
	return s, nil
}

// Snapshot returns a copy that callers may read freely.
func (s *Service) Snapshot() *cards.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coll.Clone()
}

// Update applies fn and then saves the collection, whether or not fn
// reported a change. A failed save rolls the in-memory collection back.
func (s *Service) Update(op string, fn func(c *cards.Collection) bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.coll.Clone()
	changed := fn(s.coll)
	if err := s.store.Save(s.coll); err != nil {
		s.coll = prev
		s.log.Error("save failed", "op", op, "err", err)
		return false, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Debug("collection saved", "op", op, "changed", changed)
	return changed, nil
}

func (s *Service) ToggleOwned(index int, owned bool) error {
	var opErr error
	_, err := s.Update("toggle_owned", func(c *cards.Collection) bool {
		opErr = cards.ToggleOwned(c, index, owned)
		return opErr == nil
	})
	if opErr != nil {
		return opErr
	}
	return err
}

// SetOwnedVisible applies a submitted checklist page: every index in
// visible becomes owned iff it is also in owned.
func (s *Service) SetOwnedVisible(visible, owned []int) error {
	checked := make(map[int]bool, len(owned))
	for _, i := range owned {
		checked[i] = true
	}
	var opErr error
	_, err := s.Update("set_owned", func(c *cards.Collection) bool {
		for _, i := range visible {
			if i < 0 || i >= len(c.Cards) {
				opErr = cards.ErrIndexOutOfRange
				return false
			}
		}
		changed := false
		for _, i := range visible {
			if c.Cards[i].Owned != checked[i] {
				changed = true
			}
			c.Cards[i].Owned = checked[i]
		}
		return changed
	})
	if opErr != nil {
		return opErr
	}
	return err
}

func (s *Service) AddCard(in cards.NewCard) (bool, error) {
	return s.Update("add_card", func(c *cards.Collection) bool {
		return cards.AddCard(c, in)
	})
}

func (s *Service) AddSet(name string) (bool, error) {
	return s.Update("add_set", func(c *cards.Collection) bool {
		return cards.AddSet(c, name)
	})
}

func (s *Service) Stats() cards.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cards.ComputeStats(s.coll)
}
