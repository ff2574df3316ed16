package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/eoreilly0906/Spoon-API/middlewares"
	"github.com/eoreilly0906/Spoon-API/services"

	"github.com/gin-gonic/gin"
)

// SearchController fronts the Spoonacular integration: searching,
// looking at details, and importing a result as an owned recipe.
type SearchController struct {
	Spoon   *services.SpoonacularService
	Recipes *services.RecipeService
}

func NewSearchController(spoon *services.SpoonacularService, recipes *services.RecipeService) *SearchController {
	return &SearchController{Spoon: spoon, Recipes: recipes}
}

// GET /search/recipes?ingredients=eggs,flour
func (s *SearchController) Search(c *gin.Context) {
	ingredients := c.Query("ingredients")
	if ingredients == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "missing 'ingredients' query param"})
		return
	}

	results, err := s.Spoon.SearchByIngredients(ingredients)
	if err != nil {
		if errors.Is(err, services.ErrSearchNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Recipe search is not configured"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"message": "Recipe search failed"})
		return
	}
	c.JSON(http.StatusOK, results)
}

// GET /search/recipes/:id
func (s *SearchController) Details(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid recipe id"})
		return
	}

	details, err := s.Spoon.GetRecipeDetails(id)
	if err != nil {
		if errors.Is(err, services.ErrSearchNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Recipe search is not configured"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"message": "Recipe lookup failed"})
		return
	}
	c.JSON(http.StatusOK, details)
}

type ImportInput struct {
	SpoonacularID int    `json:"spoonacularId" binding:"required"`
	MealType      string `json:"mealType" binding:"required"`
	Region        string `json:"region" binding:"required"`
}

// POST /recipes/import
// Spoonacular doesn't know our meal types or regions, so the client
// supplies those; everything else comes from the upstream details.
func (s *SearchController) Import(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var input ImportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	details, err := s.Spoon.GetRecipeDetails(input.SpoonacularID)
	if err != nil {
		if errors.Is(err, services.ErrSearchNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Recipe search is not configured"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"message": "Recipe lookup failed"})
		return
	}

	recipe, err := s.Recipes.Create(userID, services.RecipeInputFromDetails(details, input.MealType, input.Region))
	if err != nil {
		if errors.Is(err, services.ErrInvalidMealType) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}
