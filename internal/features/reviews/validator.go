package reviews

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/modacart/internal/features/users"
)

var validate = validator.New()

// ValidateCreate checks a single review payload
func ValidateCreate(req *CreateRequest) error {
	if req.Rating < 1 || req.Rating > 5 {
		return errors.New("please add a rating between 1 and 5")
	}
	if len(req.Title) > 100 {
		return errors.New("title can not be more than 100 characters")
	}
	if _, err := primitive.ObjectIDFromHex(req.Product); err != nil {
		return errors.New("invalid product id")
	}
	if req.ProfilePicture == "" {
		req.ProfilePicture = defaultProfilePicture
	}
	return nil
}

// splitCandidates separates an admin batch into insertable reviews and
// rejected records. Items missing product, title or comment are rejected
// and reported back, never persisted.
func splitCandidates(candidates []Candidate, owner primitive.ObjectID) ([]Review, []Candidate) {
	inserts := make([]Review, 0, len(candidates))
	rejected := []Candidate{}

	for _, candidate := range candidates {
		productID, err := primitive.ObjectIDFromHex(candidate.Product)
		if validate.Struct(candidate) != nil || err != nil ||
			candidate.Rating < 1 || candidate.Rating > 5 || len(candidate.Title) > 100 {
			rejected = append(rejected, candidate)
			continue
		}

		profilePicture := candidate.ProfilePicture
		if profilePicture == "" {
			profilePicture = defaultProfilePicture
		}

		inserts = append(inserts, Review{
			User:           owner,
			Product:        productID,
			Rating:         candidate.Rating,
			Title:          candidate.Title,
			Comment:        candidate.Comment,
			ProfilePicture: profilePicture,
		})
	}

	return inserts, rejected
}

// canModify is the ownership gate: only the review's owner or an admin
// may update or delete it.
func canModify(review *Review, userID, role string) bool {
	return review.User.Hex() == userID || role == users.RoleAdmin
}

// buildUpdate turns an update payload into a store update. The owner and
// creation timestamp are never part of it, and reviewModified is always
// forced true.
func buildUpdate(req *UpdateRequest) (bson.M, error) {
	updates := bson.M{"reviewModified": true}

	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, errors.New("please add a rating between 1 and 5")
		}
		updates["rating"] = *req.Rating
	}
	if req.Title != nil {
		if len(*req.Title) > 100 {
			return nil, errors.New("title can not be more than 100 characters")
		}
		updates["title"] = *req.Title
	}
	if req.Comment != nil {
		updates["comment"] = *req.Comment
	}
	if req.ProfilePicture != nil {
		updates["profilePicture"] = *req.ProfilePicture
	}

	return updates, nil
}
