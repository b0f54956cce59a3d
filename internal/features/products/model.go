package products

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories a product can belong to
var Categories = []string{"shoes", "watches", "hoodies", "jeans", "jackets", "tees"}

const defaultSection = "all"

// Product is one catalog item. The slug is derived from the name on every
// write that touches the name.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Slug          string             `bson:"slug" json:"slug"`
	Description   string             `bson:"description" json:"description"`
	AverageRating float64            `bson:"averageRating,omitempty" json:"averageRating,omitempty"`
	Category      string             `bson:"category" json:"category"`
	Section       string             `bson:"section" json:"section"`
	ProductCost   float64            `bson:"productCost" json:"productCost"`
	Photo         string             `bson:"photo" json:"photo"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateRequest is the payload for a single product create
type CreateRequest struct {
	Name          string  `json:"name" binding:"required,max=50"`
	Description   string  `json:"description" binding:"required,max=500"`
	AverageRating float64 `json:"averageRating"`
	Category      string  `json:"category" binding:"required"`
	Section       string  `json:"section"`
	ProductCost   float64 `json:"productCost" binding:"required"`
	Photo         string  `json:"photo" binding:"required"`
}

// Candidate is one submitted record in a seeder batch
type Candidate struct {
	Name          string  `json:"name" validate:"required,max=50"`
	Description   string  `json:"description" validate:"required,max=500"`
	AverageRating float64 `json:"averageRating"`
	Category      string  `json:"category" validate:"required"`
	Section       string  `json:"section"`
	ProductCost   float64 `json:"productCost" validate:"required"`
	Photo         string  `json:"photo" validate:"required"`
}

// UpdateRequest is a partial product update
type UpdateRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	AverageRating *float64 `json:"averageRating"`
	Category      *string  `json:"category"`
	Section       *string  `json:"section"`
	ProductCost   *float64 `json:"productCost"`
	Photo         *string  `json:"photo"`
}

// BatchResult reports a seeder run back to the caller
type BatchResult struct {
	Inserted int         `json:"inserted"`
	Rejected []Candidate `json:"rejectedProducts"`
}
