package services

import (
	"testing"

	"github.com/adangerfield1026/Capstone/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource scripts one tier of the lookup chain.
type fakeSource struct {
	items  map[string]models.FoodItem
	err    error
	cached []models.FoodItem
}

func (f *fakeSource) Search(query string, limit int) ([]models.FoodItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.FoodItem
	for _, it := range f.items {
		out = append(out, it)
	}
	return out, nil
}

func (f *fakeSource) NutritionPer100g(foodID string) (*models.FoodItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	it, ok := f.items[foodID]
	if !ok {
		return nil, ErrFoodNotFound
	}
	return &it, nil
}

func (f *fakeSource) Cache(item models.FoodItem) error {
	f.cached = append(f.cached, item)
	return nil
}

var chicken = models.FoodItem{
	CatalogID: "food_chicken",
	Label:     "Chicken Breast",
	PerRef:    models.Nutrition{Calories: 165, Protein: 31, Fat: 3.6},
}

func TestFoodService_PrimaryHitIsCached(t *testing.T) {
	primary := &fakeSource{items: map[string]models.FoodItem{"food_chicken": chicken}}
	fallback := &fakeSource{items: map[string]models.FoodItem{}}
	svc := NewFoodService(primary, fallback)

	item, err := svc.NutritionPer100g("food_chicken")
	require.NoError(t, err)
	assert.Equal(t, "Chicken Breast", item.Label)
	require.Len(t, fallback.cached, 1)
	assert.Equal(t, "food_chicken", fallback.cached[0].CatalogID)
}

func TestFoodService_FallsBackWhenRateLimited(t *testing.T) {
	primary := &fakeSource{err: ErrRateLimited}
	fallback := &fakeSource{items: map[string]models.FoodItem{"food_chicken": chicken}}
	svc := NewFoodService(primary, fallback)

	// The rate limit is recovered locally, not surfaced to the caller.
	item, err := svc.NutritionPer100g("food_chicken")
	require.NoError(t, err)
	assert.Equal(t, 165.0, item.PerRef.Calories)
}

func TestFoodService_FallsBackWhenNotFoundUpstream(t *testing.T) {
	primary := &fakeSource{items: map[string]models.FoodItem{}}
	fallback := &fakeSource{items: map[string]models.FoodItem{"food_chicken": chicken}}
	svc := NewFoodService(primary, fallback)

	item, err := svc.NutritionPer100g("food_chicken")
	require.NoError(t, err)
	assert.Equal(t, "Chicken Breast", item.Label)
}

func TestFoodService_NotFoundAnywhere(t *testing.T) {
	svc := NewFoodService(&fakeSource{items: map[string]models.FoodItem{}}, &fakeSource{items: map[string]models.FoodItem{}})

	_, err := svc.NutritionPer100g("nope")
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestFoodService_Preview(t *testing.T) {
	svc := NewFoodService(&fakeSource{items: map[string]models.FoodItem{"food_chicken": chicken}}, &fakeSource{})

	entry, err := svc.Preview("food_chicken", 150, "g")
	require.NoError(t, err)
	assert.Equal(t, 248.0, entry.Actual.Calories)
	assert.Equal(t, 46.5, entry.Actual.Protein)
	assert.Equal(t, 150.0, entry.Amount)

	_, err = svc.Preview("food_chicken", 150, "stone")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Preview("food_chicken", -1, "g")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFoodService_PreviewUnitConversion(t *testing.T) {
	svc := NewFoodService(&fakeSource{items: map[string]models.FoodItem{"food_chicken": chicken}}, &fakeSource{})

	// 1 oz = 28.35 g → 165 * 0.2835 = 46.7775 → 47 kcal.
	entry, err := svc.Preview("food_chicken", 1, "oz")
	require.NoError(t, err)
	assert.Equal(t, 47.0, entry.Actual.Calories)
	assert.Equal(t, "oz", entry.Unit)
}
