package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Taichi-iskw/videominer/internal/model"
	"github.com/Taichi-iskw/videominer/internal/service"
)

// VideoHandler serves /videominer/videos
type VideoHandler struct {
	videos service.VideoService
}

func NewVideoHandler(videos service.VideoService) *VideoHandler {
	return &VideoHandler{videos: videos}
}

// Register mounts the video routes on rg
func (h *VideoHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/videos", h.List)
	rg.GET("/videos/:id", h.Get)
	rg.GET("/videos/:id/comments", h.Comments)
	rg.GET("/videos/:id/captions", h.Captions)
	rg.POST("/videos", h.Create)
	rg.PUT("/videos/:id", h.Update)
	rg.DELETE("/videos/:id", h.Delete)
}

// List videos; 404 when the page is empty
func (h *VideoHandler) List(c *gin.Context) {
	params, err := listParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	videos, err := h.videos.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

// Get video by id
func (h *VideoHandler) Get(c *gin.Context) {
	video, err := h.videos.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

// Comments lists the comments of a video
func (h *VideoHandler) Comments(c *gin.Context) {
	comments, err := h.videos.Comments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Captions lists the captions of a video
func (h *VideoHandler) Captions(c *gin.Context) {
	captions, err := h.videos.Captions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, captions)
}

// Create video
func (h *VideoHandler) Create(c *gin.Context) {
	var video model.Video
	if !bindJSON(c, &video) {
		return
	}

	created, err := h.videos.Create(c.Request.Context(), &video)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update replaces the video under the path id
func (h *VideoHandler) Update(c *gin.Context) {
	var video model.Video
	if !bindJSON(c, &video) {
		return
	}

	if err := h.videos.Update(c.Request.Context(), c.Param("id"), &video); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete video by id
func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.videos.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
