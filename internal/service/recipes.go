package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

// ErrNoIngredients is returned when a recipe search is attempted with an empty
// include list.
var ErrNoIngredients = errors.New("no ingredients to search with")

// searchPageSize is how many candidates are requested from the vendor per
// search. The exclusion filter can only shrink the page, never backfill it.
const searchPageSize = 10

// ExclusionPolicy decides whether a recipe ingredient conflicts with an
// excluded ingredient name.
type ExclusionPolicy func(recipeIngredient, excluded string) bool

// SubstringExclusion flags a conflict when the excluded name appears anywhere
// in the recipe ingredient, case-insensitively. "butter" therefore also
// rejects "peanut butter"; the false positives are accepted as the safer
// direction for a health filter.
func SubstringExclusion(recipeIngredient, excluded string) bool {
	return strings.Contains(strings.ToLower(recipeIngredient), strings.ToLower(excluded))
}

// ExactExclusion flags a conflict only on a case-insensitive exact name match.
func ExactExclusion(recipeIngredient, excluded string) bool {
	return strings.EqualFold(strings.TrimSpace(recipeIngredient), strings.TrimSpace(excluded))
}

// RecipeMatcher searches the recipe vendor with a user's include list and
// filters the results against their exclude list.
type RecipeMatcher struct {
	api    RecipeAPI
	policy ExclusionPolicy
}

var _ IRecipeMatcher = (*RecipeMatcher)(nil)

// NewRecipeMatcher creates a new RecipeMatcher instance. A nil policy defaults
// to SubstringExclusion.
func NewRecipeMatcher(api RecipeAPI, policy ExclusionPolicy) *RecipeMatcher {
	if policy == nil {
		policy = SubstringExclusion
	}
	return &RecipeMatcher{api: api, policy: policy}
}

// FindRecipes searches by the include list, hydrates the hits in one bulk
// call, and drops any recipe whose ingredient list conflicts with the exclude
// list. Vendor ranking order is preserved. A recipe with no ingredient data
// cannot be checked and passes the filter.
func (m *RecipeMatcher) FindRecipes(ctx context.Context, include, exclude []string) ([]RecipeCandidate, error) {
	if len(include) == 0 {
		return nil, ErrNoIngredients
	}

	summaries, err := m.api.SearchByIngredients(ctx, include, searchPageSize)
	if err != nil {
		return nil, fmt.Errorf("recipe search failed: %w", err)
	}
	if len(summaries) == 0 {
		return []RecipeCandidate{}, nil
	}

	ids := make([]int64, len(summaries))
	for i, s := range summaries {
		ids[i] = s.ID
	}

	candidates, err := m.api.GetRecipeInformationBulk(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("recipe detail fetch failed: %w", err)
	}

	// The bulk endpoint does not guarantee search order; restore it.
	byID := make(map[int64]RecipeCandidate, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
	}

	filtered := make([]RecipeCandidate, 0, len(summaries))
	for _, s := range summaries {
		candidate, ok := byID[s.ID]
		if !ok {
			continue
		}
		if m.conflicts(&candidate, exclude) {
			continue
		}
		filtered = append(filtered, candidate)
	}

	log.Printf("[RecipeMatcher] %d of %d candidates kept after exclusion filter", len(filtered), len(summaries))
	return filtered, nil
}

func (m *RecipeMatcher) conflicts(candidate *RecipeCandidate, exclude []string) bool {
	for _, ingredient := range candidate.ExtendedIngredients {
		for _, excluded := range exclude {
			if excluded == "" {
				continue
			}
			if m.policy(ingredient.Name, excluded) || m.policy(ingredient.Original, excluded) {
				return true
			}
		}
	}
	return false
}
