package services

import (
	"errors"
	"fmt"

	"github.com/eoreilly0906/Spoon-API/models"

	"gorm.io/gorm"
)

var (
	// ErrRecipeNotFound is returned both when the id doesn't exist and
	// when it belongs to another user. Collapsing the two means a
	// response never confirms that someone else's recipe exists.
	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrInvalidMealType = errors.New("mealType must be one of Breakfast, Lunch/Dinner, Dessert")
)

type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

type RecipeInput struct {
	Title        string `json:"title" binding:"required"`
	MealType     string `json:"mealType" binding:"required"`
	Region       string `json:"region" binding:"required"`
	Ingredients  string `json:"ingredients" binding:"required"`
	Instructions string `json:"instructions" binding:"required"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl"`
	Servings     int    `json:"servings"`
	PrepTime     int    `json:"prepTime"`
	CookTime     int    `json:"cookTime"`
	TotalTime    int    `json:"totalTime"`
	SourceURL    string `json:"sourceUrl"`
}

// RecipeUpdate uses pointers so a PUT can touch only the fields it
// actually sends. userId and id are not here on purpose.
type RecipeUpdate struct {
	Title        *string `json:"title"`
	MealType     *string `json:"mealType"`
	Region       *string `json:"region"`
	Ingredients  *string `json:"ingredients"`
	Instructions *string `json:"instructions"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"imageUrl"`
	Servings     *int    `json:"servings"`
	PrepTime     *int    `json:"prepTime"`
	CookTime     *int    `json:"cookTime"`
	TotalTime    *int    `json:"totalTime"`
	SourceURL    *string `json:"sourceUrl"`
}

func (s *RecipeService) List(userID uint) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// Get loads a recipe by id scoped to its owner. The query itself
// enforces ownership so there is no window where another user's row is
// even read.
func (s *RecipeService) Get(userID, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to load recipe: %w", err)
	}
	return &recipe, nil
}

func (s *RecipeService) Create(userID uint, in RecipeInput) (*models.Recipe, error) {
	if !models.ValidMealType(in.MealType) {
		return nil, ErrInvalidMealType
	}

	recipe := models.Recipe{
		Title:        in.Title,
		MealType:     in.MealType,
		Region:       in.Region,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		Servings:     in.Servings,
		PrepTime:     in.PrepTime,
		CookTime:     in.CookTime,
		TotalTime:    in.TotalTime,
		SourceURL:    in.SourceURL,
		UserID:       userID, // always the token identity, never the body
	}
	if err := s.db.Create(&recipe).Error; err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	return &recipe, nil
}

func (s *RecipeService) Update(userID, id uint, in RecipeUpdate) (*models.Recipe, error) {
	recipe, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	if in.MealType != nil && !models.ValidMealType(*in.MealType) {
		return nil, ErrInvalidMealType
	}

	if in.Title != nil {
		recipe.Title = *in.Title
	}
	if in.MealType != nil {
		recipe.MealType = *in.MealType
	}
	if in.Region != nil {
		recipe.Region = *in.Region
	}
	if in.Ingredients != nil {
		recipe.Ingredients = *in.Ingredients
	}
	if in.Instructions != nil {
		recipe.Instructions = *in.Instructions
	}
	if in.Description != nil {
		recipe.Description = *in.Description
	}
	if in.ImageURL != nil {
		recipe.ImageURL = *in.ImageURL
	}
	if in.Servings != nil {
		recipe.Servings = *in.Servings
	}
	if in.PrepTime != nil {
		recipe.PrepTime = *in.PrepTime
	}
	if in.CookTime != nil {
		recipe.CookTime = *in.CookTime
	}
	if in.TotalTime != nil {
		recipe.TotalTime = *in.TotalTime
	}
	if in.SourceURL != nil {
		recipe.SourceURL = *in.SourceURL
	}

	if err := s.db.Save(recipe).Error; err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}
	return recipe, nil
}

// Delete removes the recipe if the caller owns it. Deleting something
// already gone is just another not-found, so repeated deletes are safe.
func (s *RecipeService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Recipe{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete recipe: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}
