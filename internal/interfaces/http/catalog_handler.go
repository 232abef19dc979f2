package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/lucka79/objednavkyApl-sub002/internal/application/catalog"
	"github.com/lucka79/objednavkyApl-sub002/internal/application/dto"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain"
)

// CatalogHandler serves reference data reads: ingredients, recipes, products
// and their bills of materials (protected).
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler builds the catalog handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func paramInt64(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}

// ListIngredients godoc
// @Summary      List ingredients
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.IngredientResponse
// @Router       /api/ingredients [get]
func (h *CatalogHandler) ListIngredients(c *fiber.Ctx) error {
	out, err := h.uc.ListIngredients(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListRecipes godoc
// @Summary      List recipes
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RecipeResponse
// @Router       /api/recipes [get]
func (h *CatalogHandler) ListRecipes(c *fiber.Ctx) error {
	out, err := h.uc.ListRecipes(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetRecipe godoc
// @Summary      Recipe detail with ingredient lines and total weight
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "recipe ID"
// @Success      200  {object}  dto.RecipeDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recipes/{id} [get]
func (h *CatalogHandler) GetRecipe(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id must be an integer"})
	}
	out, err := h.uc.GetRecipe(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recipe not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListProducts godoc
// @Summary      List products
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.uc.ListProducts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetProductParts godoc
// @Summary      Bill of materials of one product
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "product ID"
// @Success      200  {array}   dto.ProductPartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/parts [get]
func (h *CatalogHandler) GetProductParts(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id must be an integer"})
	}
	out, err := h.uc.GetProductParts(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
