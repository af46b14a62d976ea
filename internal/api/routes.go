package api

import (
	"html/template"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with logging, recovery, the page and the
// JSON API.
func NewRouter(h *Handler, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(log), Recovery(log))
	r.SetHTMLTemplate(template.Must(template.New("").Funcs(h.funcs()).ParseFS(templateFS, "templates/*.tmpl")))
	RegisterRoutes(r, h)
	return r
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/", h.page)
	r.POST("/owned", h.submitOwned)
	r.POST("/cards", h.submitCard)
	r.POST("/sets", h.submitSet)

	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/collection", h.collection)
		api.GET("/stats", h.stats)
		api.GET("/types", h.types)
		api.GET("/cards", h.listCards)
		api.POST("/filter", h.filterHandler)
		api.PUT("/cards/:index/owned", h.setOwned)
		api.POST("/cards", h.addCard)
		api.POST("/sets", h.addSet)
		api.GET("/qr", h.qrHandler)
		api.GET("/badge.png", h.badgeHandler)
		api.GET("/export", h.exportHandler)
	}
}
