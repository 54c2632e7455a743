package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotel-search/hotel-search-aggregation-service/internal/domain"
)

func result(id string, price, rating, score float64) domain.MergedHotelResult {
	return domain.MergedHotelResult{ID: id, Price: price, Rating: rating, Score: score}
}

func resultIDs(results []domain.MergedHotelResult) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	return ids
}

func TestApplyFilter_NilFilterReturnsInput(t *testing.T) {
	input := []domain.MergedHotelResult{result("1", 100, 3, 70)}
	assert.Equal(t, input, ApplyFilter(input, nil))
}

func TestApplyFilter_PriceBounds(t *testing.T) {
	// The spec scenario: bounds 100..200 over {80,110,176,350} keeps {110,176}.
	input := []domain.MergedHotelResult{
		result("a", 80, 3, 70),
		result("b", 110, 3, 70),
		result("c", 176, 3, 70),
		result("d", 350, 3, 70),
	}
	filter := &domain.FilterSpec{MinPrice: fptr(100), MaxPrice: fptr(200)}

	filtered := ApplyFilter(input, filter)

	assert.Equal(t, []string{"b", "c"}, resultIDs(filtered))
}

func TestApplyFilter_Conjunctive(t *testing.T) {
	input := []domain.MergedHotelResult{
		result("cheap-bad", 50, 2.0, 40),
		result("cheap-good", 60, 4.5, 90),
		result("dear-good", 500, 4.8, 95),
	}
	filter := &domain.FilterSpec{
		MaxPrice:  fptr(100),
		MinRating: fptr(4),
		MinScore:  fptr(80),
	}

	filtered := ApplyFilter(input, filter)

	assert.Equal(t, []string{"cheap-good"}, resultIDs(filtered))
}

func TestApplyFilter_AllExcluded(t *testing.T) {
	input := []domain.MergedHotelResult{result("1", 100, 3, 70)}
	filtered := ApplyFilter(input, &domain.FilterSpec{MinScore: fptr(99)})

	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}

func TestApplyFilter_DoesNotMutateInput(t *testing.T) {
	input := []domain.MergedHotelResult{
		result("a", 80, 3, 70),
		result("b", 110, 3, 70),
	}
	_ = ApplyFilter(input, &domain.FilterSpec{MinPrice: fptr(100)})

	require.Len(t, input, 2)
	assert.Equal(t, "a", input[0].ID)
}
