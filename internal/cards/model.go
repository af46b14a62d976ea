package cards

import (
	"slices"
	"sort"

	"github.com/shopspring/decimal"
)

// Types offered by the add-card form. Cards may carry any other type.
const (
	TypeCharacter = "Character"
	TypeBasicLand = "Basic Land"
	TypeItemSpell = "Item/Spell"
	TypePromo     = "Promo"
)

var SuggestedTypes = []string{TypeCharacter, TypeBasicLand, TypeItemSpell, TypePromo}

// Card is addressed by its index in Collection.Cards; it has no id field.
type Card struct {
	Name  string `json:"name"`
	Set   string `json:"set"`
	Type  string `json:"type"`
	Image string `json:"image"`
	Value Price  `json:"value"`
	Owned bool   `json:"owned"`
}

// Collection is the persisted document.
type Collection struct {
	Sets  []string `json:"sets"`
	Cards []Card   `json:"cards"`
}

// Price is an estimated value. It is encoded as a bare JSON number.
type Price struct {
	decimal.Decimal
}

func NewPrice(v float64) Price {
	return Price{decimal.NewFromFloat(v)}
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.String()), nil
}

func (c Card) Equal(o Card) bool {
	return c.Name == o.Name &&
		c.Set == o.Set &&
		c.Type == o.Type &&
		c.Image == o.Image &&
		c.Owned == o.Owned &&
		c.Value.Equal(o.Value.Decimal)
}

// Equal reports structural equality; values are compared numerically.
func (c *Collection) Equal(o *Collection) bool {
	if c == nil || o == nil {
		return c == o
	}
	if !slices.Equal(c.Sets, o.Sets) || len(c.Cards) != len(o.Cards) {
		return false
	}
	for i := range c.Cards {
		if !c.Cards[i].Equal(o.Cards[i]) {
			return false
		}
	}
	return true
}

func (c *Collection) Clone() *Collection {
	return &Collection{
		Sets:  append([]string{}, c.Sets...),
		Cards: append([]Card{}, c.Cards...),
	}
}

// HasSet reports whether name is a known set.
func (c *Collection) HasSet(name string) bool {
	return slices.Contains(c.Sets, name)
}

// Types returns the distinct card types in sorted order.
func (c *Collection) Types() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, card := range c.Cards {
		if !seen[card.Type] {
			seen[card.Type] = true
			out = append(out, card.Type)
		}
	}
	sort.Strings(out)
	return out
}

// DefaultCollection is used when no data file exists yet.
func DefaultCollection() *Collection {
	const placeholder = "https://via.placeholder.com/150"
	return &Collection{
		Sets: []string{"Dawn of Heroes", "Rebellion's Call"},
		Cards: []Card{
			{Name: "Cloud Strife", Set: "Dawn of Heroes", Type: TypeCharacter, Image: placeholder, Value: NewPrice(15)},
			{Name: "Warrior of Light", Set: "Dawn of Heroes", Type: TypeCharacter, Image: placeholder, Value: NewPrice(10)},
			{Name: "Moogle's Gift", Set: "Rebellion's Call", Type: TypeItemSpell, Image: placeholder, Value: NewPrice(5)},
		},
	}
}
