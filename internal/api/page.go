package api

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/youruser/surgechecklist/internal/cards"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// newSetOption is the set choice that reveals the new-set field.
const newSetOption = "<New set>"

type pageData struct {
	Types          []string
	Selected       map[string]bool
	Rows           []cards.Indexed
	Owned          int
	Total          int
	OwnedValue     string
	Sets           []string
	NewSetOption   string
	SuggestedTypes []string
}

func (h *Handler) funcs() template.FuncMap {
	return template.FuncMap{
		"money": func(p cards.Price) string {
			return cards.FormatValue(p.Decimal, h.currency)
		},
	}
}

// selectedTypes reads the filter. Without an explicit selection every
// observed type is shown.
func selectedTypes(values url.Values, all []string) []string {
	if values.Get("filtered") != "1" {
		return all
	}
	return values["type"]
}

func (h *Handler) page(c *gin.Context) {
	coll := h.svc.Snapshot()
	all := coll.Types()
	selected := selectedTypes(c.Request.URL.Query(), all)

	sel := make(map[string]bool, len(selected))
	for _, t := range selected {
		sel[t] = true
	}
	s := cards.ComputeStats(coll)
	c.HTML(http.StatusOK, "index.tmpl", pageData{
		Types:          all,
		Selected:       sel,
		Rows:           cards.Collect(cards.FilterByType(coll, selected)),
		Owned:          s.Owned,
		Total:          s.Total,
		OwnedValue:     cards.FormatValue(s.OwnedValue, h.currency),
		Sets:           coll.Sets,
		NewSetOption:   newSetOption,
		SuggestedTypes: cards.SuggestedTypes,
	})
}

// submitOwned applies the checkbox state of the visible cards.
func (h *Handler) submitOwned(c *gin.Context) {
	visible, err := parseIndices(c.PostFormArray("visible"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	owned, err := parseIndices(c.PostFormArray("owned"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.SetOwnedVisible(visible, owned); err != nil {
		_ = c.Error(err)
		if errors.Is(err, cards.ErrIndexOutOfRange) {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	back := url.Values{}
	if c.PostForm("filtered") == "1" {
		back.Set("filtered", "1")
		for _, t := range c.PostFormArray("type") {
			back.Add("type", t)
		}
	}
	target := "/"
	if len(back) > 0 {
		target += "?" + back.Encode()
	}
	c.Redirect(http.StatusSeeOther, target)
}

func (h *Handler) submitCard(c *gin.Context) {
	value, err := parseValue(c.PostForm("value"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	in := cards.NewCard{
		Name:  c.PostForm("name"),
		Set:   c.PostForm("set"),
		Type:  c.PostForm("type"),
		Image: c.PostForm("image"),
		Value: cards.Price{Decimal: value},
	}
	if in.Set == newSetOption {
		in.Set = ""
		in.NewSet = c.PostForm("new_set")
	}
	if _, err := h.svc.AddCard(in); err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) submitSet(c *gin.Context) {
	if _, err := h.svc.AddSet(c.PostForm("name")); err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func parseIndices(raw []string) ([]int, error) {
	out := make([]int, 0, len(raw))
	for _, r := range raw {
		i, err := strconv.Atoi(r)
		if err != nil {
			return nil, errors.New("invalid card index " + strconv.Quote(r))
		}
		out = append(out, i)
	}
	return out, nil
}

// parseValue accepts an empty field as zero and rejects negatives.
func parseValue(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, errors.New("invalid value " + strconv.Quote(raw))
	}
	if v.IsNegative() {
		return decimal.Decimal{}, errors.New("value must not be negative")
	}
	return v, nil
}
