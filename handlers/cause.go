package handlers

import (
	"errors"
	"net/http"

	causeRepo "dharmachain/database/repository/cause"
	"dharmachain/models"
	"dharmachain/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CauseHandler serves public causes and the admin donation categories.
type CauseHandler struct {
	Categories causeRepo.CategoryRepository
}

func NewCauseHandler(repo causeRepo.CategoryRepository) *CauseHandler {
	return &CauseHandler{Categories: repo}
}

func (h *CauseHandler) PublicCausesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, causeRepo.PublicCauses())
}

func (h *CauseHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.Categories.List(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch donation categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donation categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// bindCategory binds and validates the category form. Text is trimmed before the rules
// are checked, so a blank title does not pass as present.
func bindCategory(c *gin.Context) (models.DonationCategoryInput, bool) {
	var in models.DonationCategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		if _, isValidation := utils.ValidationFields(in, err, nil); !isValidation {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return in, false
		}
	}
	in = in.Normalized()
	if err := utils.ValidateStruct(in); err != nil {
		fields, _ := utils.ValidationFields(in, err, models.DonationCategoryMessages)
		utils.JSONFieldErrors(c, "Invalid donation category", utils.FieldMap(fields))
		return in, false
	}
	return in, true
}

func (h *CauseHandler) CreateCategoryHandler(c *gin.Context) {
	in, ok := bindCategory(c)
	if !ok {
		return
	}
	created, err := h.Categories.Create(c.Request.Context(), in)
	if err != nil {
		zap.L().Error("Failed to create donation category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create donation category"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CauseHandler) UpdateCategoryHandler(c *gin.Context) {
	in, ok := bindCategory(c)
	if !ok {
		return
	}
	updated, err := h.Categories.Update(c.Request.Context(), c.Param("id"), in)
	if errors.Is(err, causeRepo.ErrCategoryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Donation category not found"})
		return
	}
	if err != nil {
		zap.L().Error("Failed to update donation category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update donation category"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CauseHandler) DeleteCategoryHandler(c *gin.Context) {
	err := h.Categories.DeleteByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, causeRepo.ErrCategoryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Donation category not found"})
		return
	}
	if err != nil {
		zap.L().Error("Failed to delete donation category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete donation category"})
		return
	}
	c.Status(http.StatusNoContent)
}
