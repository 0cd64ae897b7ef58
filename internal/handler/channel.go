package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Taichi-iskw/videominer/internal/model"
	"github.com/Taichi-iskw/videominer/internal/service"
)

// ChannelHandler serves /videominer/channels
type ChannelHandler struct {
	channels service.ChannelService
}

func NewChannelHandler(channels service.ChannelService) *ChannelHandler {
	return &ChannelHandler{channels: channels}
}

// Register mounts the channel routes on rg
func (h *ChannelHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/channels", h.List)
	rg.GET("/channels/:id", h.Get)
	rg.POST("/channels", h.Create)
	rg.PUT("/channels/:id", h.Update)
	rg.DELETE("/channels/:id", h.Delete)
}

// List channels; 404 when the page is empty
func (h *ChannelHandler) List(c *gin.Context) {
	params, err := listParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	channels, err := h.channels.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, channels)
}

// Get channel by id
func (h *ChannelHandler) Get(c *gin.Context) {
	channel, err := h.channels.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, channel)
}

// Create channel
func (h *ChannelHandler) Create(c *gin.Context) {
	var channel model.Channel
	if !bindJSON(c, &channel) {
		return
	}

	created, err := h.channels.Create(c.Request.Context(), &channel)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update replaces the channel under the path id
func (h *ChannelHandler) Update(c *gin.Context) {
	var channel model.Channel
	if !bindJSON(c, &channel) {
		return
	}

	if err := h.channels.Update(c.Request.Context(), c.Param("id"), &channel); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete channel by id
func (h *ChannelHandler) Delete(c *gin.Context) {
	if err := h.channels.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
