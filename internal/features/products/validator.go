package products

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
)

var validate = validator.New()

// ValidateCreate checks a single create payload against the schema rules
func ValidateCreate(req *CreateRequest) error {
	if !validCategory(req.Category) {
		return errors.New("category must be one of: shoes, watches, hoodies, jeans, jackets, tees")
	}
	if err := validateRating(req.AverageRating); err != nil {
		return err
	}
	if req.Section == "" {
		req.Section = defaultSection
	}
	return nil
}

// ValidateUpdate checks a partial update payload
func ValidateUpdate(req *UpdateRequest) error {
	if req.Name != nil && (len(*req.Name) == 0 || len(*req.Name) > 50) {
		return errors.New("name can not be more than 50 characters")
	}
	if req.Description != nil && len(*req.Description) > 500 {
		return errors.New("description can not be more than 500 characters")
	}
	if req.Category != nil && !validCategory(*req.Category) {
		return errors.New("category must be one of: shoes, watches, hoodies, jeans, jackets, tees")
	}
	if req.AverageRating != nil {
		if err := validateRating(*req.AverageRating); err != nil {
			return err
		}
	}
	return nil
}

// splitCandidates separates a seeder batch into insertable products and
// rejected records. Rejections are reported back, never persisted.
func splitCandidates(candidates []Candidate) ([]Product, []Candidate) {
	products := make([]Product, 0, len(candidates))
	rejected := []Candidate{}

	for _, candidate := range candidates {
		if validate.Struct(candidate) != nil || !validCategory(candidate.Category) ||
			validateRating(candidate.AverageRating) != nil {
			rejected = append(rejected, candidate)
			continue
		}

		section := candidate.Section
		if section == "" {
			section = defaultSection
		}

		products = append(products, Product{
			Name:          candidate.Name,
			Slug:          slug.Make(candidate.Name),
			Description:   candidate.Description,
			AverageRating: candidate.AverageRating,
			Category:      candidate.Category,
			Section:       section,
			ProductCost:   candidate.ProductCost,
			Photo:         candidate.Photo,
		})
	}

	return products, rejected
}

func validCategory(category string) bool {
	for _, c := range Categories {
		if category == c {
			return true
		}
	}
	return false
}

// validateRating enforces the catalog's 1 to 10 rating scale; zero means unset
func validateRating(rating float64) error {
	if rating == 0 {
		return nil
	}
	if rating < 1 || rating > 10 {
		return errors.New("rating must be between 1 and 10")
	}
	return nil
}
