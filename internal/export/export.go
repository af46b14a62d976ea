package export

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/youruser/surgechecklist/internal/cards"
)

// Formats accepted by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// otherSet heads cards whose set is not registered.
const otherSet = "Other"

// Text renders a printable checklist grouped by set.
func Text(c *cards.Collection, currency string) string {
	bySet := map[string][]cards.Card{}
	for _, card := range c.Cards {
		set := card.Set
		if !c.HasSet(set) {
			set = otherSet
		}
		bySet[set] = append(bySet[set], card)
	}

	order := append([]string{}, c.Sets...)
	if len(bySet[otherSet]) > 0 && !c.HasSet(otherSet) {
		order = append(order, otherSet)
	}

	lines := []string{}
	for _, set := range order {
		lines = append(lines, "# "+set)
		for _, card := range bySet[set] {
			mark := " "
			if card.Owned {
				mark = "x"
			}
			lines = append(lines, fmt.Sprintf("[%s] %s (%s) - %s",
				mark, card.Name, card.Type, cards.FormatValue(card.Value.Decimal, currency)))
		}
	}
	s := cards.ComputeStats(c)
	lines = append(lines, fmt.Sprintf("Owned: %d/%d, estimated value: %s",
		s.Owned, s.Total, cards.FormatValue(s.OwnedValue, currency)))
	return strings.Join(lines, "\n") + "\n"
}

// yamlValue is emitted as a plain scalar so the decimal keeps every digit.
type yamlValue string

func (v yamlValue) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: string(v)}, nil
}

type yamlCard struct {
	Name  string    `yaml:"name"`
	Set   string    `yaml:"set"`
	Type  string    `yaml:"type"`
	Image string    `yaml:"image,omitempty"`
	Value yamlValue `yaml:"value"`
	Owned bool      `yaml:"owned"`
}

type yamlCollection struct {
	Sets  []string   `yaml:"sets"`
	Cards []yamlCard `yaml:"cards"`
}

func YAML(c *cards.Collection) ([]byte, error) {
	doc := yamlCollection{Sets: c.Sets, Cards: make([]yamlCard, 0, len(c.Cards))}
	for _, card := range c.Cards {
		doc.Cards = append(doc.Cards, yamlCard{
			Name:  card.Name,
			Set:   card.Set,
			Type:  card.Type,
			Image: card.Image,
			Value: yamlValue(card.Value.String()),
			Owned: card.Owned,
		})
	}
	return yaml.Marshal(doc)
}

// Render dispatches on format and returns the body with its content type.
func Render(c *cards.Collection, format, currency string) ([]byte, string, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return []byte(Text(c, currency)), "text/plain; charset=utf-8", nil
	case FormatJSON:
		b, err := cards.Encode(c)
		return b, "application/json", err
	case FormatYAML, "yml":
		b, err := YAML(c)
		return b, "application/yaml", err
	}
	return nil, "", fmt.Errorf("unknown export format %q", format)
}
