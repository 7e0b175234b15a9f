package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListCategories handles GET /api/v1/categories
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Categories())
}

// CategoryProducts handles GET /api/v1/categories/:id/products
func (h *Handler) CategoryProducts(c *gin.Context) {
	products, err := h.catalog.CategoryProducts(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// SearchProducts handles GET /api/v1/products?q=
func (h *Handler) SearchProducts(c *gin.Context) {
	products, err := h.catalog.SearchProducts(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/v1/products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	detail, err := h.catalog.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ResolveIngredient handles GET /api/v1/resolve?name=
func (h *Handler) ResolveIngredient(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	detail, err := h.catalog.Resolve(c.Request.Context(), name)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListRecipes handles GET /api/v1/recipes?q= and the legacy GET /api/recipes
func (h *Handler) ListRecipes(c *gin.Context) {
	recipes, err := h.catalog.Recipes(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GetRecipe handles GET /api/v1/recipes/:id
func (h *Handler) GetRecipe(c *gin.Context) {
	recipe, err := h.catalog.Recipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// ToggleFavorite handles POST /api/v1/recipes/:id/favorite
func (h *Handler) ToggleFavorite(c *gin.Context) {
	recipe, err := h.catalog.ToggleFavorite(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}
