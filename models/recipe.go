package models

import (
	"time"
)

// Meal type values accepted for a recipe. Matches what the web client
// offers in its dropdown, so anything else is a bad request.
const (
	MealTypeBreakfast   = "Breakfast"
	MealTypeLunchDinner = "Lunch/Dinner"
	MealTypeDessert     = "Dessert"
)

func ValidMealType(t string) bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunchDinner, MealTypeDessert:
		return true
	}
	return false
}

// Recipe belongs to exactly one user. UserID is set from the verified
// token identity on create and is never writable through the API.
type Recipe struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Title        string `gorm:"not null" json:"title"`
	MealType     string `gorm:"not null" json:"mealType"`
	Region       string `gorm:"not null" json:"region"`
	Ingredients  string `gorm:"type:text;not null" json:"ingredients"` // newline-delimited
	Instructions string `gorm:"type:text;not null" json:"instructions"`

	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Servings    int    `json:"servings,omitempty"`
	PrepTime    int    `json:"prepTime,omitempty"` // minutes
	CookTime    int    `json:"cookTime,omitempty"`
	TotalTime   int    `json:"totalTime,omitempty"`
	SourceURL   string `json:"sourceUrl,omitempty"`

	UserID    uint      `gorm:"not null;index" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
