package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Taichi-iskw/videominer/internal/model"
	"github.com/Taichi-iskw/videominer/internal/service"
)

// CommentHandler serves /videominer/comments
type CommentHandler struct {
	comments service.CommentService
}

func NewCommentHandler(comments service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// Register mounts the comment routes on rg
func (h *CommentHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/comments", h.List)
	rg.GET("/comments/:id", h.Get)
	rg.POST("/comments", h.Create)
	rg.PUT("/comments/:id", h.Update)
	rg.DELETE("/comments/:id", h.Delete)
}

// List comments; an empty page is an empty array
func (h *CommentHandler) List(c *gin.Context) {
	params, err := listParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	comments, err := h.comments.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Get comment by id; 403 when its video has comments turned off
func (h *CommentHandler) Get(c *gin.Context) {
	comment, err := h.comments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) Create(c *gin.Context) {
	var comment model.Comment
	if !bindJSON(c, &comment) {
		return
	}

	created, err := h.comments.Create(c.Request.Context(), &comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CommentHandler) Update(c *gin.Context) {
	var comment model.Comment
	if !bindJSON(c, &comment) {
		return
	}

	if err := h.comments.Update(c.Request.Context(), c.Param("id"), &comment); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.comments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
