package accounts

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is a scraped social account tracked by the catalog.
// RemoveItem and KeepItem are soft workflow markers set by the review
// tooling; an update that finds RemoveItem true deletes the record instead.
type Account struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username       string             `bson:"username" json:"username"`
	Followers      int                `bson:"followers" json:"followers"`
	Following      int                `bson:"following" json:"following"`
	ProfilePicture string             `bson:"profilePicture" json:"profilePicture"`
	AccountsOrigin string             `bson:"accountsOrigin,omitempty" json:"accountsOrigin,omitempty"`
	RemoveItem     bool               `bson:"removeItem" json:"removeItem"`
	KeepItem       bool               `bson:"keepItem" json:"keepItem"`
	ImageURL       []string           `bson:"imageUrl" json:"imageUrl"`
	Date           string             `bson:"date" json:"date"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// Count accepts a JSON number or a scraped string like "1,234" or "1 234".
type Count string

var countSeparators = regexp.MustCompile(`[.,\s]`)

func (c *Count) UnmarshalJSON(b []byte) error {
	var asString string
	if err := json.Unmarshal(b, &asString); err == nil {
		*c = Count(asString)
		return nil
	}

	var asNumber json.Number
	if err := json.Unmarshal(b, &asNumber); err != nil {
		return err
	}
	*c = Count(asNumber.String())
	return nil
}

// Int strips thousands separators and whitespace and parses the remainder
func (c Count) Int() (int, error) {
	stripped := countSeparators.ReplaceAllString(strings.TrimSpace(string(c)), "")
	return strconv.Atoi(stripped)
}

// Candidate is one submitted record in a batch ingest
type Candidate struct {
	Username       string   `json:"username" validate:"required"`
	Followers      Count    `json:"followers" validate:"required"`
	Following      Count    `json:"following" validate:"required"`
	ProfilePicture string   `json:"profilePicture" validate:"required"`
	AccountsOrigin string   `json:"accountsOrigin"`
	RemoveItem     bool     `json:"removeItem"`
	KeepItem       bool     `json:"keepItem"`
	ImageURL       []string `json:"imageUrl" validate:"required,min=1"`
	Date           string   `json:"date" validate:"required"`
}

// UpdateRequest is a partial account update. Pointer fields distinguish
// absent from zero values.
type UpdateRequest struct {
	Followers      *int     `json:"followers"`
	Following      *int     `json:"following"`
	ProfilePicture *string  `json:"profilePicture"`
	AccountsOrigin *string  `json:"accountsOrigin"`
	RemoveItem     *bool    `json:"removeItem"`
	KeepItem       *bool    `json:"keepItem"`
	ImageURL       []string `json:"imageUrl"`
	Date           *string  `json:"date"`
}

// ProfilePreview is scraped page metadata for a profile URL
type ProfilePreview struct {
	OriginalURL string `json:"originalUrl"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
