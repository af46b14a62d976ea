package api

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/youruser/surgechecklist/internal/cards"
	"github.com/youruser/surgechecklist/internal/checklist"
	"github.com/youruser/surgechecklist/internal/export"
	imagepkg "github.com/youruser/surgechecklist/internal/image"
)

// Handler serves the checklist page and the JSON API.
type Handler struct {
	svc       *checklist.Service
	currency  string
	publicURL string
}

func NewHandler(svc *checklist.Service, currency, publicURL string) *Handler {
	return &Handler{svc: svc, currency: currency, publicURL: publicURL}
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) collection(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Snapshot())
}

func (h *Handler) stats(c *gin.Context) {
	s := h.svc.Stats()
	c.JSON(http.StatusOK, gin.H{
		"owned":       s.Owned,
		"total":       s.Total,
		"owned_value": s.OwnedValue.StringFixed(2),
		"display":     cards.FormatValue(s.OwnedValue, h.currency),
	})
}

func (h *Handler) types(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"types":     h.svc.Snapshot().Types(),
		"suggested": cards.SuggestedTypes,
	})
}

// listCards returns every card, or only the given ?type= values.
func (h *Handler) listCards(c *gin.Context) {
	coll := h.svc.Snapshot()
	var out []cards.Indexed
	if types, ok := c.GetQueryArray("type"); ok {
		out = cards.Collect(cards.FilterByType(coll, types))
	} else {
		out = cards.Collect(cards.Filter(coll, cards.FilterOptions{}))
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "cards": out})
}

func (h *Handler) filterHandler(c *gin.Context) {
	var opt cards.FilterOptions
	if err := c.ShouldBindJSON(&opt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := cards.Collect(cards.Filter(h.svc.Snapshot(), opt))
	c.JSON(http.StatusOK, gin.H{"count": len(out), "cards": out})
}

func (h *Handler) setOwned(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid card index"})
		return
	}
	var req struct {
		Owned *bool `json:"owned"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Owned == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owned is required"})
		return
	}
	if err := h.svc.ToggleOwned(index, *req.Owned); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"index": index, "owned": *req.Owned})
}

func (h *Handler) addCard(c *gin.Context) {
	var in cards.NewCard
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.Value.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "value must not be negative"})
		return
	}
	added, err := h.svc.AddCard(in)
	if err != nil {
		h.fail(c, err)
		return
	}
	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"added": added})
}

func (h *Handler) addSet(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	added, err := h.svc.AddSet(req.Name)
	if err != nil {
		h.fail(c, err)
		return
	}
	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"added": added})
}

// qr endpoint returns a PNG of a QR for "text" query param
func (h *Handler) qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		text = h.publicURL
	}
	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil {
		size = v
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func (h *Handler) badgeHandler(c *gin.Context) {
	var buf bytes.Buffer
	if err := imagepkg.WriteBadgePNG(&buf, h.svc.Stats(), h.publicURL); err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (h *Handler) exportHandler(c *gin.Context) {
	body, ctype, err := export.Render(h.svc.Snapshot(), c.Query("format"), h.currency)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, ctype, body)
}

func (h *Handler) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	if errors.Is(err, cards.ErrIndexOutOfRange) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
