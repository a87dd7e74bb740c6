package handlers

import (
	"errors"
	"io"
	"net/http"

	"dharmachain/models"
	"dharmachain/services/editor"
	"dharmachain/services/sections"
	"dharmachain/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UploadSectionImageHandler takes a multipart "file" and attaches it to a draft section.
func (h *AboutHandler) UploadSectionImageHandler(c *gin.Context) {
	logger := getLogger(c)
	sectionID := c.Param("id")

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, storage.MaxImageBytes+1<<20)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}
	if fileHeader.Size > storage.MaxImageBytes {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": storage.ErrImageTooLarge.Error()})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file", "detail": err.Error()})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file", "detail": err.Error()})
		return
	}

	draft, err := h.Editor.UploadImage(c.Request.Context(), adminEmail(c), sectionID, models.ImageFile{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err == nil {
		c.JSON(http.StatusOK, draft)
		return
	}

	status := http.StatusBadGateway
	switch {
	case errors.Is(err, sections.ErrSectionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, editor.ErrUploadInProgress):
		status = http.StatusConflict
	case errors.Is(err, editor.ErrUploadsDisabled):
		status = http.StatusServiceUnavailable
	case errors.Is(err, storage.ErrNotAnImage), errors.Is(err, storage.ErrImageTooLarge), errors.Is(err, storage.ErrEmptyImage):
		status = http.StatusUnprocessableEntity
	}
	logger.Warn("Section image upload failed", zap.String("section", sectionID), zap.Int("status", status), zap.Error(err))
	c.JSON(status, gin.H{"error": err.Error(), "draft": draft})
}
