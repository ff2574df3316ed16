package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/eoreilly0906/Spoon-API/middlewares"
	"github.com/eoreilly0906/Spoon-API/services"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	Recipes *services.RecipeService
}

func NewRecipeController(recipes *services.RecipeService) *RecipeController {
	return &RecipeController{Recipes: recipes}
}

// GET /recipes
func (r *RecipeController) List(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	recipes, err := r.Recipes.List(userID)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GET /recipes/:id
func (r *RecipeController) Get(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	id, ok := recipeID(c)
	if !ok {
		return
	}

	recipe, err := r.Recipes.Get(userID, id)
	if err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// POST /recipes
func (r *RecipeController) Create(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	// Any userId in the body is simply never read.
	var input services.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	recipe, err := r.Recipes.Create(userID, input)
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

// PUT /recipes/:id
func (r *RecipeController) Update(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	id, ok := recipeID(c)
	if !ok {
		return
	}

	var input services.RecipeUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	recipe, err := r.Recipes.Update(userID, id, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
		case errors.Is(err, services.ErrInvalidMealType):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			internalError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// DELETE /recipes/:id
func (r *RecipeController) Delete(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	id, ok := recipeID(c)
	if !ok {
		return
	}

	if err := r.Recipes.Delete(userID, id); err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted"})
}

// recipeID parses the :id param. A non-numeric id can't name any owned
// recipe, so it gets the same not-found as a missing one.
func recipeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
		return 0, false
	}
	return uint(id), true
}
