package export

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/youruser/surgechecklist/internal/cards"
)

func TestText(t *testing.T) {
	c := cards.DefaultCollection()
	require.NoError(t, cards.ToggleOwned(c, 0, true))
	c.Cards = append(c.Cards, cards.Card{Name: "Stray", Set: "Unknown", Type: cards.TypePromo, Value: cards.NewPrice(1.25)})

	want := "# Dawn of Heroes\n" +
		"[x] Cloud Strife (Character) - $15.00\n" +
		"[ ] Warrior of Light (Character) - $10.00\n" +
		"# Rebellion's Call\n" +
		"[ ] Moogle's Gift (Item/Spell) - $5.00\n" +
		"# Other\n" +
		"[ ] Stray (Promo) - $1.25\n" +
		"Owned: 1/4, estimated value: $15.00\n"
	assert.Equal(t, want, Text(c, "USD"))
}

func TestYAML(t *testing.T) {
	b, err := YAML(cards.DefaultCollection())
	require.NoError(t, err)

	var doc struct {
		Sets  []string `yaml:"sets"`
		Cards []struct {
			Name  string  `yaml:"name"`
			Value float64 `yaml:"value"`
		} `yaml:"cards"`
	}
	require.NoError(t, yaml.Unmarshal(b, &doc))
	assert.Equal(t, []string{"Dawn of Heroes", "Rebellion's Call"}, doc.Sets)
	require.Len(t, doc.Cards, 3)
	assert.Equal(t, "Moogle's Gift", doc.Cards[2].Name)
	assert.Equal(t, 5.0, doc.Cards[2].Value)
}

func TestYAML_KeepsDecimalPrecision(t *testing.T) {
	precise := "12345678901234567.891234"
	c := &cards.Collection{
		Sets:  []string{"A"},
		Cards: []cards.Card{{Name: "x", Set: "A", Type: cards.TypePromo, Value: cards.Price{Decimal: decimal.RequireFromString(precise)}}},
	}

	b, err := YAML(c)
	require.NoError(t, err)
	assert.Contains(t, string(b), "value: "+precise+"\n")

	var doc struct {
		Cards []struct {
			Value string `yaml:"value"`
		} `yaml:"cards"`
	}
	require.NoError(t, yaml.Unmarshal(b, &doc))
	assert.Equal(t, precise, doc.Cards[0].Value)
}

func TestRender(t *testing.T) {
	c := cards.DefaultCollection()

	body, ctype, err := Render(c, "JSON", "USD")
	require.NoError(t, err)
	assert.Equal(t, "application/json", ctype)
	got, err := cards.Decode(body)
	require.NoError(t, err)
	assert.True(t, c.Equal(got))

	_, ctype, err = Render(c, "", "USD")
	require.NoError(t, err)
	assert.Contains(t, ctype, "text/plain")

	_, _, err = Render(c, "xml", "USD")
	assert.Error(t, err)
}
