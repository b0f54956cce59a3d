package products

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCreate(t *testing.T) {
	req := &CreateRequest{
		Name:        "Air Runner",
		Description: "Lightweight running shoe",
		Category:    "shoes",
		ProductCost: 99.99,
		Photo:       "air-runner.jpg",
	}
	require.NoError(t, ValidateCreate(req))
	require.Equal(t, "all", req.Section) // empty section defaults

	req.Category = "furniture"
	require.Error(t, ValidateCreate(req))

	req.Category = "shoes"
	req.AverageRating = 11
	require.Error(t, ValidateCreate(req))

	req.AverageRating = 0 // zero means unset, not a rating
	require.NoError(t, ValidateCreate(req))
}

func TestValidateUpdate(t *testing.T) {
	longName := make([]byte, 51)
	for i := range longName {
		longName[i] = 'x'
	}

	name := string(longName)
	require.Error(t, ValidateUpdate(&UpdateRequest{Name: &name}))

	good := "Air Runner v2"
	require.NoError(t, ValidateUpdate(&UpdateRequest{Name: &good}))

	badCategory := "furniture"
	require.Error(t, ValidateUpdate(&UpdateRequest{Category: &badCategory}))

	lowRating := 0.5
	require.Error(t, ValidateUpdate(&UpdateRequest{AverageRating: &lowRating}))

	okRating := 7.5
	require.NoError(t, ValidateUpdate(&UpdateRequest{AverageRating: &okRating}))
}

func TestSplitCandidates(t *testing.T) {
	candidates := []Candidate{
		{
			Name:        "Air Runner",
			Description: "Lightweight running shoe",
			Category:    "shoes",
			ProductCost: 99.99,
			Photo:       "air-runner.jpg",
		},
		{
			// missing photo
			Name:        "Chrono X",
			Description: "Steel chronograph",
			Category:    "watches",
			ProductCost: 250,
		},
		{
			// category outside the enum
			Name:        "Desk Lamp",
			Description: "Not our product line",
			Category:    "furniture",
			ProductCost: 30,
			Photo:       "lamp.jpg",
		},
		{
			// rating out of range
			Name:          "Over Rated",
			Description:   "Rating scale tops out at 10",
			Category:      "tees",
			AverageRating: 12,
			ProductCost:   20,
			Photo:         "tee.jpg",
		},
	}

	products, rejected := splitCandidates(candidates)

	require.Len(t, products, 1)
	require.Len(t, rejected, 3)
	require.Equal(t, "Air Runner", products[0].Name)
	require.Equal(t, "air-runner", products[0].Slug)
	require.Equal(t, "all", products[0].Section)
}
