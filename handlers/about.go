package handlers

import (
	"errors"
	"net/http"

	"dharmachain/middleware"
	"dharmachain/models"
	"dharmachain/services/content"
	"dharmachain/services/editor"
	"dharmachain/services/sections"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AboutHandler serves the public About page and the admin editor for it.
type AboutHandler struct {
	Store  content.Store
	Editor *editor.Editor
}

func NewAboutHandler(store content.Store, ed *editor.Editor) *AboutHandler {
	return &AboutHandler{Store: store, Editor: ed}
}

// GetAboutHandler returns the resolved About content. It never fails.
func (h *AboutHandler) GetAboutHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Load(c.Request.Context()))
}

func adminEmail(c *gin.Context) string {
	if s, ok := middleware.CurrentAdmin(c); ok {
		return s.Email
	}
	return ""
}

// GetDraftHandler returns the admin's draft, loading it on first use.
func (h *AboutHandler) GetDraftHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Editor.Open(c.Request.Context(), adminEmail(c)))
}

// ReloadDraftHandler discards unsaved edits.
func (h *AboutHandler) ReloadDraftHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Editor.Reload(c.Request.Context(), adminEmail(c)))
}

func (h *AboutHandler) UpdateMainHandler(c *gin.Context) {
	var patch models.MainInfoPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.Editor.UpdateMain(c.Request.Context(), adminEmail(c), patch))
}

func (h *AboutHandler) InsertSectionHandler(c *gin.Context) {
	section, draft := h.Editor.InsertSection(c.Request.Context(), adminEmail(c))
	c.JSON(http.StatusCreated, gin.H{"section": section, "draft": draft})
}

func (h *AboutHandler) UpdateSectionHandler(c *gin.Context) {
	var patch models.SectionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	draft, err := h.Editor.UpdateSection(c.Request.Context(), adminEmail(c), c.Param("id"), patch)
	if errors.Is(err, sections.ErrSectionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found", "draft": draft})
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *AboutHandler) RemoveSectionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Editor.RemoveSection(c.Request.Context(), adminEmail(c), c.Param("id")))
}

func (h *AboutHandler) MoveSectionHandler(c *gin.Context) {
	var req struct {
		Direction editor.Direction `json:"direction"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	draft, err := h.Editor.MoveSection(c.Request.Context(), adminEmail(c), c.Param("id"), req.Direction)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "draft": draft})
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SaveDraftHandler persists the draft. On failure the draft is returned untouched with
// a notification so the admin can retry.
func (h *AboutHandler) SaveDraftHandler(c *gin.Context) {
	email := adminEmail(c)
	draft, err := h.Editor.Save(c.Request.Context(), email)
	switch {
	case errors.Is(err, editor.ErrMainHeadingRequired):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Invalid about content",
			"fields":  gin.H{"mainHeading": "Main heading is required"},
			"draft":   draft,
		})
		return
	case errors.Is(err, editor.ErrStaleDraft):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":        "Failed to save changes",
			"notification": "The saved page could not be loaded, so saving now would overwrite it. Reload and try again.",
			"draft":        draft,
		})
		return
	}
	if err != nil {
		getLogger(c).Error("Failed to save about content", zap.String("admin", email), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":        "Failed to save changes",
			"notification": "Your changes were not saved. Please try again.",
			"draft":        draft,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "About content updated successfully",
		"draft":   draft,
	})
}
