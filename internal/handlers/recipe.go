package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mpcastro/recipebook-backend/internal/logger"
	"github.com/mpcastro/recipebook-backend/internal/services"
)

type RecipeHandler struct {
	log            *logger.Logger
	recipeService  services.RecipeService
	computeService services.ComputeService
}

func NewRecipeHandler(log *logger.Logger, recipeService services.RecipeService, computeService services.ComputeService) *RecipeHandler {
	return &RecipeHandler{
		log:            log.With("handler", "RecipeHandler"),
		recipeService:  recipeService,
		computeService: computeService,
	}
}

type recipeIngredientRequest struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type createRecipeRequest struct {
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	Ingredients []recipeIngredientRequest `json:"ingredients"`
	Steps       []string                  `json:"steps"`
	Servings    float64                   `json:"servings"`
	CategoryID  string                    `json:"category_id"`
}

type updateRecipeRequest struct {
	Title       *string                   `json:"title"`
	Description *string                   `json:"description"`
	Ingredients []recipeIngredientRequest `json:"ingredients"`
	Steps       *[]string                 `json:"steps"`
	Servings    *float64                  `json:"servings"`
	CategoryID  *string                   `json:"category_id"`
}

func toIngredientInputs(reqs []recipeIngredientRequest) []services.RecipeIngredientInput {
	if reqs == nil {
		return nil
	}
	inputs := make([]services.RecipeIngredientInput, len(reqs))
	for i, r := range reqs {
		inputs[i] = services.RecipeIngredientInput{Name: r.Name, Quantity: r.Quantity, Unit: r.Unit}
	}
	return inputs
}

func (h *RecipeHandler) List(c *gin.Context) {
	filter := services.RecipeFilter{
		CategoryName: c.Query("category"),
		Search:       c.Query("search"),
	}
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_argument", err)
			return
		}
		filter.CategoryID = &id
	}

	recipes, err := h.recipeService.List(c.Request.Context(), &filter)
	if err != nil {
		h.log.Error("List failed", "error", err)
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	recipe, err := h.recipeService.Get(c.Request.Context(), id)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) Create(c *gin.Context) {
	var req createRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), services.CreateRecipeInput{
		Title:       req.Title,
		Description: req.Description,
		Ingredients: toIngredientInputs(req.Ingredients),
		Steps:       req.Steps,
		Servings:    req.Servings,
		CategoryID:  categoryID,
	})
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondCreated(c, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	var req updateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}

	input := services.UpdateRecipeInput{
		Title:       req.Title,
		Description: req.Description,
		Ingredients: toIngredientInputs(req.Ingredients),
		Steps:       req.Steps,
		Servings:    req.Servings,
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_argument", err)
			return
		}
		input.CategoryID = &categoryID
	}

	recipe, err := h.recipeService.Update(c.Request.Context(), id, input)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	if err := h.recipeService.Delete(c.Request.Context(), id); err != nil {
		RespondAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) Publish(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	recipe, err := h.recipeService.Publish(c.Request.Context(), id)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) Archive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	recipe, err := h.recipeService.Archive(c.Request.Context(), id)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) Scale(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	servings, err := strconv.ParseFloat(c.Query("servings"), 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	recipe, err := h.computeService.ScaleRecipe(c.Request.Context(), id, servings)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) ShoppingList(c *gin.Context) {
	var req struct {
		RecipeIDs []string `json:"recipe_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	ids := make([]uuid.UUID, 0, len(req.RecipeIDs))
	for _, raw := range req.RecipeIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_argument", err)
			return
		}
		ids = append(ids, id)
	}

	items, err := h.computeService.GenerateShoppingList(c.Request.Context(), ids)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"items": items})
}
