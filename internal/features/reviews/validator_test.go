package reviews

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/modacart/internal/features/users"
)

func TestValidateCreate(t *testing.T) {
	productID := primitive.NewObjectID().Hex()

	req := &CreateRequest{
		Product: productID,
		Rating:  4,
		Title:   "Great shoes",
		Comment: "Comfortable and light",
	}
	require.NoError(t, ValidateCreate(req))
	require.Equal(t, "no-photo.jpg", req.ProfilePicture) // default applied

	req.Rating = 6
	require.Error(t, ValidateCreate(req))

	req.Rating = 4
	req.Title = strings.Repeat("x", 101)
	require.Error(t, ValidateCreate(req))

	req.Title = "ok"
	req.Product = "not-an-object-id"
	require.Error(t, ValidateCreate(req))
}

func TestSplitCandidates(t *testing.T) {
	owner := primitive.NewObjectID()
	productID := primitive.NewObjectID().Hex()

	candidates := []Candidate{
		{Product: productID, Rating: 5, Title: "Love it", Comment: "Would buy again"},
		{Product: productID, Rating: 0, Title: "No rating", Comment: "Rating outside 1-5"},
		{Product: "bad-id", Rating: 3, Title: "Bad product ref", Comment: "Rejected"},
		{Product: productID, Rating: 3, Title: "", Comment: "Missing title"},
	}

	inserts, rejected := splitCandidates(candidates, owner)

	require.Len(t, inserts, 1)
	require.Len(t, rejected, 3)
	require.Equal(t, owner, inserts[0].User)
	require.Equal(t, "no-photo.jpg", inserts[0].ProfilePicture)
}

func TestCanModify(t *testing.T) {
	ownerID := primitive.NewObjectID()
	review := &Review{User: ownerID}

	require.True(t, canModify(review, ownerID.Hex(), users.RoleUser))
	require.True(t, canModify(review, primitive.NewObjectID().Hex(), users.RoleAdmin))
	require.False(t, canModify(review, primitive.NewObjectID().Hex(), users.RoleUser))
}

func TestBuildUpdate(t *testing.T) {
	rating := 4
	title := "Updated title"

	updates, err := buildUpdate(&UpdateRequest{Rating: &rating, Title: &title})
	require.NoError(t, err)

	// modification flag is always forced on, ownership never moves
	require.Equal(t, true, updates["reviewModified"])
	require.Equal(t, 4, updates["rating"])
	require.Equal(t, "Updated title", updates["title"])
	require.NotContains(t, updates, "user")
	require.NotContains(t, updates, "createdAt")

	badRating := 9
	_, err = buildUpdate(&UpdateRequest{Rating: &badRating})
	require.Error(t, err)

	longTitle := strings.Repeat("x", 101)
	_, err = buildUpdate(&UpdateRequest{Title: &longTitle})
	require.Error(t, err)

	// an empty payload still flips the modification flag
	updates, err = buildUpdate(&UpdateRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, len(updates))
	require.Equal(t, true, updates["reviewModified"])
}
