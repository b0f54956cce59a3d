package reviews

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultProfilePicture = "no-photo.jpg"

// Review is a product review owned by the user who wrote it.
// ReviewModified flips to true on the first successful update and stays
// true from then on.
type Review struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User           primitive.ObjectID `bson:"user" json:"user"`
	Product        primitive.ObjectID `bson:"product" json:"product"`
	Rating         int                `bson:"rating" json:"rating"`
	Title          string             `bson:"title" json:"title"`
	Comment        string             `bson:"comment" json:"comment"`
	ProfilePicture string             `bson:"profilePicture" json:"profilePicture"`
	ReviewModified bool               `bson:"reviewModified" json:"reviewModified"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateRequest is the payload for a single review. The owner comes from
// the authenticated user, never from the payload.
type CreateRequest struct {
	Product        string `json:"product" binding:"required"`
	Rating         int    `json:"rating" binding:"required"`
	Title          string `json:"title" binding:"required"`
	Comment        string `json:"comment" binding:"required"`
	ProfilePicture string `json:"profilePicture"`
}

// Candidate is one submitted record in an admin batch
type Candidate struct {
	Product        string `json:"product" validate:"required"`
	Rating         int    `json:"rating"`
	Title          string `json:"title" validate:"required"`
	Comment        string `json:"comment" validate:"required"`
	ProfilePicture string `json:"profilePicture"`
}

// UpdateRequest is a partial review update. Ownership and creation time
// are not part of the type: whatever the client sends for user or
// createdAt is discarded at bind time.
type UpdateRequest struct {
	Rating         *int    `json:"rating"`
	Title          *string `json:"title"`
	Comment        *string `json:"comment"`
	ProfilePicture *string `json:"profilePicture"`
}

// BatchResult reports an admin batch back to the caller
type BatchResult struct {
	Inserted int         `json:"inserted"`
	Rejected []Candidate `json:"rejectedReviews"`
}
