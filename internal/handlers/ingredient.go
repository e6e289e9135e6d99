package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mpcastro/recipebook-backend/internal/logger"
	"github.com/mpcastro/recipebook-backend/internal/services"
)

type IngredientHandler struct {
	log               *logger.Logger
	ingredientService services.IngredientService
}

func NewIngredientHandler(log *logger.Logger, ingredientService services.IngredientService) *IngredientHandler {
	return &IngredientHandler{
		log:               log.With("handler", "IngredientHandler"),
		ingredientService: ingredientService,
	}
}

func (h *IngredientHandler) List(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		ingredient, err := h.ingredientService.FindByName(c.Request.Context(), name)
		if err != nil {
			RespondAppError(c, err)
			return
		}
		if ingredient == nil {
			RespondOK(c, gin.H{"ingredients": []any{}})
			return
		}
		RespondOK(c, gin.H{"ingredients": []any{ingredient}})
		return
	}

	ingredients, err := h.ingredientService.List(c.Request.Context())
	if err != nil {
		h.log.Error("List failed", "error", err)
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"ingredients": ingredients})
}

func (h *IngredientHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	ingredient, err := h.ingredientService.Get(c.Request.Context(), id)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"ingredient": ingredient})
}

func (h *IngredientHandler) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	ingredient, err := h.ingredientService.Create(c.Request.Context(), services.CreateIngredientInput{Name: req.Name})
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondCreated(c, gin.H{"ingredient": ingredient})
}

func (h *IngredientHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	var req struct {
		Name *string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	ingredient, err := h.ingredientService.Update(c.Request.Context(), id, services.UpdateIngredientInput{Name: req.Name})
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"ingredient": ingredient})
}

func (h *IngredientHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	if err := h.ingredientService.Delete(c.Request.Context(), id); err != nil {
		RespondAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
