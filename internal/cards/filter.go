package cards

import (
	"iter"
	"slices"
	"strings"
)

// Ownership modes for FilterOptions.
const (
	OwnedAny     = ""
	OwnedOnly    = "owned"
	OwnedMissing = "missing"
)

// FilterOptions narrows the card list. Empty fields do not constrain.
type FilterOptions struct {
	Types     []string `json:"types"`
	Sets      []string `json:"sets"`
	Owned     string   `json:"owned"`
	FreeWords string   `json:"free_words"`
}

// FilterByType yields the cards whose type is in types, with their
// index, in collection order. An empty selection yields nothing.
func FilterByType(c *Collection, types []string) iter.Seq2[int, Card] {
	return func(yield func(int, Card) bool) {
		for i, card := range c.Cards {
			if !slices.Contains(types, card.Type) {
				continue
			}
			if !yield(i, card) {
				return
			}
		}
	}
}

func Filter(c *Collection, opt FilterOptions) iter.Seq2[int, Card] {
	return func(yield func(int, Card) bool) {
		for i, card := range c.Cards {
			if !opt.match(card) {
				continue
			}
			if !yield(i, card) {
				return
			}
		}
	}
}

func (opt FilterOptions) match(c Card) bool {
	if len(opt.Types) > 0 && !slices.Contains(opt.Types, c.Type) {
		return false
	}
	if len(opt.Sets) > 0 && !slices.Contains(opt.Sets, c.Set) {
		return false
	}
	switch opt.Owned {
	case OwnedOnly:
		if !c.Owned {
			return false
		}
	case OwnedMissing:
		if c.Owned {
			return false
		}
	}
	for _, k := range strings.Fields(opt.FreeWords) {
		k = strings.ToLower(k)
		if !strings.Contains(strings.ToLower(c.Name), k) &&
			!strings.Contains(strings.ToLower(c.Set), k) &&
			!strings.Contains(strings.ToLower(c.Type), k) {
			return false
		}
	}
	return true
}

// Indexed pairs a card with its position in the collection.
type Indexed struct {
	Index int  `json:"index"`
	Card  Card `json:"card"`
}

// Collect drains seq into a slice.
func Collect(seq iter.Seq2[int, Card]) []Indexed {
	out := []Indexed{}
	for i, c := range seq {
		out = append(out, Indexed{Index: i, Card: c})
	}
	return out
}
