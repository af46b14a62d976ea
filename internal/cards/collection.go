package cards

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NewCard carries the add-card form. NewSet, when set, takes precedence
// over Set and is registered as a set if unseen.
type NewCard struct {
	Name   string `json:"name"`
	Set    string `json:"set"`
	NewSet string `json:"new_set"`
	Type   string `json:"type"`
	Image  string `json:"image"`
	Value  Price  `json:"value"`
}

// Stats are derived from the cards' owned flags.
type Stats struct {
	Owned      int             `json:"owned"`
	Total      int             `json:"total"`
	OwnedValue decimal.Decimal `json:"owned_value"`
}

func ToggleOwned(c *Collection, index int, owned bool) error {
	if index < 0 || index >= len(c.Cards) {
		return ErrIndexOutOfRange
	}
	c.Cards[index].Owned = owned
	return nil
}

// AddCard appends a new unowned card. It reports false and leaves c
// untouched when the name is blank. Name, NewSet and Image are trimmed.
func AddCard(c *Collection, in NewCard) bool {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return false
	}
	set := in.Set
	if newSet := strings.TrimSpace(in.NewSet); newSet != "" {
		set = newSet
		AddSet(c, set)
	}
	c.Cards = append(c.Cards, Card{
		Name:  name,
		Set:   set,
		Type:  in.Type,
		Image: strings.TrimSpace(in.Image),
		Value: in.Value,
	})
	return true
}

// AddSet appends the trimmed name unless it is blank or already present.
func AddSet(c *Collection, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || c.HasSet(name) {
		return false
	}
	c.Sets = append(c.Sets, name)
	return true
}

func ComputeStats(c *Collection) Stats {
	s := Stats{Total: len(c.Cards), OwnedValue: decimal.Zero}
	for _, card := range c.Cards {
		if !card.Owned {
			continue
		}
		s.Owned++
		s.OwnedValue = s.OwnedValue.Add(card.Value.Decimal)
	}
	return s
}
