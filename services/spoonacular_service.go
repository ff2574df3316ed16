package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrSearchNotConfigured means no Spoonacular API key was supplied; the
// rest of the API works fine without one.
var ErrSearchNotConfigured = errors.New("recipe search is not configured")

type SpoonacularService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewSpoonacularService(apiKey string) *SpoonacularService {
	return &SpoonacularService{
		apiKey:  apiKey,
		baseURL: "https://api.spoonacular.com",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type SpoonacularSearchResult struct {
	ID                    int    `json:"id"`
	Title                 string `json:"title"`
	Image                 string `json:"image"`
	UsedIngredientCount   int    `json:"usedIngredientCount"`
	MissedIngredientCount int    `json:"missedIngredientCount"`
	Likes                 int    `json:"likes"`
}

type SpoonacularRecipeDetails struct {
	ID                  int    `json:"id"`
	Title               string `json:"title"`
	Image               string `json:"image"`
	Servings            int    `json:"servings"`
	ReadyInMinutes      int    `json:"readyInMinutes"`
	SourceURL           string `json:"sourceUrl"`
	Summary             string `json:"summary"`
	Instructions        string `json:"instructions"`
	ExtendedIngredients []struct {
		Original string `json:"original"`
	} `json:"extendedIngredients"`
}

// SearchByIngredients calls the findByIngredients endpoint with the
// same parameters the old web client used (10 results, ranking 2,
// pantry staples ignored).
func (s *SpoonacularService) SearchByIngredients(ingredients string) ([]SpoonacularSearchResult, error) {
	if s.apiKey == "" {
		return nil, ErrSearchNotConfigured
	}

	u := fmt.Sprintf(
		"%s/recipes/findByIngredients?apiKey=%s&ingredients=%s&number=10&ranking=2&ignorePantry=true",
		s.baseURL, s.apiKey, url.QueryEscape(ingredients),
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call Spoonacular search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Spoonacular search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spoonacular search API error %d: %s", resp.StatusCode, string(body))
	}

	var results []SpoonacularSearchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to parse Spoonacular search JSON: %w", err)
	}
	return results, nil
}

func (s *SpoonacularService) GetRecipeDetails(id int) (*SpoonacularRecipeDetails, error) {
	if s.apiKey == "" {
		return nil, ErrSearchNotConfigured
	}

	u := fmt.Sprintf("%s/recipes/%d/information?apiKey=%s", s.baseURL, id, s.apiKey)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call Spoonacular details: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Spoonacular details response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spoonacular details API error %d: %s", resp.StatusCode, string(body))
	}

	var details SpoonacularRecipeDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("failed to parse Spoonacular details JSON: %w", err)
	}
	return &details, nil
}

// RecipeInputFromDetails flattens Spoonacular details into the shape
// the recipe store accepts. Meal type and region come from the caller
// since Spoonacular has no equivalent fields.
func RecipeInputFromDetails(d *SpoonacularRecipeDetails, mealType, region string) RecipeInput {
	lines := make([]string, 0, len(d.ExtendedIngredients))
	for _, ing := range d.ExtendedIngredients {
		lines = append(lines, ing.Original)
	}
	return RecipeInput{
		Title:        d.Title,
		MealType:     mealType,
		Region:       region,
		Ingredients:  strings.Join(lines, "\n"),
		Instructions: d.Instructions,
		Description:  d.Summary,
		ImageURL:     d.Image,
		Servings:     d.Servings,
		TotalTime:    d.ReadyInMinutes,
		SourceURL:    d.SourceURL,
	}
}
