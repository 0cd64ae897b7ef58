package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Taichi-iskw/videominer/internal/model"
	"github.com/Taichi-iskw/videominer/internal/service"
)

// CaptionHandler serves /videominer/captions
type CaptionHandler struct {
	captions service.CaptionService
}

func NewCaptionHandler(captions service.CaptionService) *CaptionHandler {
	return &CaptionHandler{captions: captions}
}

// Register mounts the caption routes on rg
func (h *CaptionHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/captions", h.List)
	rg.GET("/captions/:id", h.Get)
	rg.POST("/captions", h.Create)
	rg.PUT("/captions/:id", h.Update)
	rg.DELETE("/captions/:id", h.Delete)
}

func (h *CaptionHandler) List(c *gin.Context) {
	params, err := listParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	captions, err := h.captions.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, captions)
}

func (h *CaptionHandler) Get(c *gin.Context) {
	caption, err := h.captions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, caption)
}

func (h *CaptionHandler) Create(c *gin.Context) {
	var caption model.Caption
	if !bindJSON(c, &caption) {
		return
	}

	created, err := h.captions.Create(c.Request.Context(), &caption)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CaptionHandler) Update(c *gin.Context) {
	var caption model.Caption
	if !bindJSON(c, &caption) {
		return
	}

	if err := h.captions.Update(c.Request.Context(), c.Param("id"), &caption); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CaptionHandler) Delete(c *gin.Context) {
	if err := h.captions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
