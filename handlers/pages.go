package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PagesHandler renders the static dashboard pages. The front end
// assets are plain templates; all data arrives through the JSON API.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler { return &PagesHandler{} }

func (h *PagesHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func (h *PagesHandler) Predict(c *gin.Context) {
	c.HTML(http.StatusOK, "predict.html", nil)
}

func (h *PagesHandler) Features(c *gin.Context) {
	c.HTML(http.StatusOK, "features.html", nil)
}

func (h *PagesHandler) HeatmapView(c *gin.Context) {
	c.HTML(http.StatusOK, "heatmap.html", nil)
}

func (h *PagesHandler) PowerBI(c *gin.Context) {
	c.HTML(http.StatusOK, "power_bi.html", nil)
}
