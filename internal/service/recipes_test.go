package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecipeAPI struct {
	summaries  []RecipeSummary
	candidates []RecipeCandidate
	searchErr  error
	bulkErr    error

	lastInclude []string
	lastNumber  int
	lastIDs     []int64
}

func (f *fakeRecipeAPI) SearchByIngredients(ctx context.Context, include []string, number int) ([]RecipeSummary, error) {
	f.lastInclude = include
	f.lastNumber = number
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.summaries, nil
}

func (f *fakeRecipeAPI) GetRecipeInformationBulk(ctx context.Context, ids []int64) ([]RecipeCandidate, error) {
	f.lastIDs = ids
	if f.bulkErr != nil {
		return nil, f.bulkErr
	}
	return f.candidates, nil
}

func candidateWithIngredients(id int64, title string, names ...string) RecipeCandidate {
	c := RecipeCandidate{ID: id, Title: title}
	for _, name := range names {
		c.ExtendedIngredients = append(c.ExtendedIngredients, RecipeIngredient{
			Name:     name,
			Original: "1 cup " + name,
		})
	}
	return c
}

func TestFindRecipes_EmptyIncludeList(t *testing.T) {
	matcher := NewRecipeMatcher(&fakeRecipeAPI{}, nil)

	_, err := matcher.FindRecipes(context.Background(), nil, []string{"butter"})
	assert.ErrorIs(t, err, ErrNoIngredients)
}

func TestFindRecipes_FiltersExcludedIngredients(t *testing.T) {
	api := &fakeRecipeAPI{
		summaries: []RecipeSummary{{ID: 1, Title: "Spinach Salad"}, {ID: 2, Title: "Butter Chicken"}},
		candidates: []RecipeCandidate{
			candidateWithIngredients(1, "Spinach Salad", "spinach", "olive oil"),
			candidateWithIngredients(2, "Butter Chicken", "chicken", "butter"),
		},
	}
	matcher := NewRecipeMatcher(api, nil)

	results, err := matcher.FindRecipes(context.Background(), []string{"spinach", "chicken"}, []string{"butter"})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "Spinach Salad", results[0].Title)
	assert.Equal(t, []string{"spinach", "chicken"}, api.lastInclude)
	assert.Equal(t, searchPageSize, api.lastNumber)
	assert.Equal(t, []int64{1, 2}, api.lastIDs)
}

func TestFindRecipes_SubstringMatchRejectsCompoundNames(t *testing.T) {
	api := &fakeRecipeAPI{
		summaries: []RecipeSummary{{ID: 1, Title: "PB Toast"}},
		candidates: []RecipeCandidate{
			candidateWithIngredients(1, "PB Toast", "Peanut Butter", "bread"),
		},
	}
	matcher := NewRecipeMatcher(api, nil)

	results, err := matcher.FindRecipes(context.Background(), []string{"bread"}, []string{"butter"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFindRecipes_ExactPolicyKeepsCompoundNames(t *testing.T) {
	api := &fakeRecipeAPI{
		summaries: []RecipeSummary{{ID: 1, Title: "PB Toast"}},
		candidates: []RecipeCandidate{
			candidateWithIngredients(1, "PB Toast", "Peanut Butter", "bread"),
		},
	}
	matcher := NewRecipeMatcher(api, ExactExclusion)

	results, err := matcher.FindRecipes(context.Background(), []string{"bread"}, []string{"butter"})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestFindRecipes_MissingIngredientDataPassesFilter(t *testing.T) {
	api := &fakeRecipeAPI{
		summaries: []RecipeSummary{{ID: 1, Title: "Mystery Dish"}},
		candidates: []RecipeCandidate{
			{ID: 1, Title: "Mystery Dish"},
		},
	}
	matcher := NewRecipeMatcher(api, nil)

	results, err := matcher.FindRecipes(context.Background(), []string{"rice"}, []string{"butter"})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestFindRecipes_EmptyExcludeListKeepsEverything(t *testing.T) {
	api := &fakeRecipeAPI{
		summaries: []RecipeSummary{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}},
		candidates: []RecipeCandidate{
			candidateWithIngredients(1, "A", "butter"),
			candidateWithIngredients(2, "B", "lard"),
		},
	}
	matcher := NewRecipeMatcher(api, nil)

	results, err := matcher.FindRecipes(context.Background(), []string{"flour"}, nil)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestFindRecipes_PreservesSearchOrder(t *testing.T) {
	api := &fakeRecipeAPI{
		summaries: []RecipeSummary{{ID: 3, Title: "C"}, {ID: 1, Title: "A"}, {ID: 2, Title: "B"}},
		// Bulk endpoint returns details in a different order.
		candidates: []RecipeCandidate{
			candidateWithIngredients(1, "A", "rice"),
			candidateWithIngredients(2, "B", "beans"),
			candidateWithIngredients(3, "C", "corn"),
		},
	}
	matcher := NewRecipeMatcher(api, nil)

	results, err := matcher.FindRecipes(context.Background(), []string{"rice"}, nil)
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, int64(3), results[0].ID)
	assert.Equal(t, int64(1), results[1].ID)
	assert.Equal(t, int64(2), results[2].ID)
}

func TestFindRecipes_NoSearchHits(t *testing.T) {
	matcher := NewRecipeMatcher(&fakeRecipeAPI{}, nil)

	results, err := matcher.FindRecipes(context.Background(), []string{"dragonfruit"}, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFindRecipes_VendorErrors(t *testing.T) {
	t.Run("search failure", func(t *testing.T) {
		api := &fakeRecipeAPI{searchErr: errors.New("quota exceeded")}
		matcher := NewRecipeMatcher(api, nil)

		_, err := matcher.FindRecipes(context.Background(), []string{"rice"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "recipe search failed")
	})

	t.Run("bulk failure", func(t *testing.T) {
		api := &fakeRecipeAPI{
			summaries: []RecipeSummary{{ID: 1, Title: "A"}},
			bulkErr:   errors.New("quota exceeded"),
		}
		matcher := NewRecipeMatcher(api, nil)

		_, err := matcher.FindRecipes(context.Background(), []string{"rice"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "recipe detail fetch failed")
	})
}
