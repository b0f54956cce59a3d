package accounts

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xyz-asif/modacart/internal/pkg/query"
	errs "github.com/xyz-asif/modacart/pkg/errors"
)

type Repository struct {
	collection *mongo.Collection
}

// NewRepository initializes the repository and the unique username index
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("accounts")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "keepItem", Value: 1}}},
	})

	return &Repository{collection: collection}
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// List runs a translated query against the collection
func (r *Repository) List(ctx context.Context, q *query.Query) ([]Account, int64, error) {
	total, err := r.collection.CountDocuments(ctx, q.Filter)
	if err != nil {
		return nil, 0, err
	}

	cursor, err := r.collection.Find(ctx, q.Filter, q.FindOptions())
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	accounts := []Account{}
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, 0, err
	}
	return accounts, total, nil
}

// ExistingUsernames returns which of the given usernames are already stored
func (r *Repository) ExistingUsernames(ctx context.Context, usernames []string) (map[string]bool, error) {
	cursor, err := r.collection.Find(
		ctx,
		bson.M{"username": bson.M{"$in": usernames}},
		options.Find().SetProjection(bson.D{{Key: "username", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	existing := make(map[string]bool)
	for cursor.Next(ctx) {
		var doc struct {
			Username string `bson:"username"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		existing[doc.Username] = true
	}
	return existing, cursor.Err()
}

// InsertMany bulk-inserts accounts. The unique index is the source of
// truth for duplicates; a concurrent ingest can still fail here even after
// the pre-check passed.
func (r *Repository) InsertMany(ctx context.Context, accounts []Account) (int, error) {
	now := time.Now()
	docs := make([]interface{}, 0, len(accounts))
	for i := range accounts {
		accounts[i].CreatedAt = now
		docs = append(docs, accounts[i])
	}

	result, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			inserted := 0
			if result != nil {
				inserted = len(result.InsertedIDs)
			}
			return inserted, errs.ErrDuplicate
		}
		return 0, err
	}
	return len(result.InsertedIDs), nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.ErrInvalidID
	}

	var account Account
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *Repository) Update(ctx context.Context, id string, updates bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrInvalidID
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// DeleteByFilter bulk-deletes everything matching the filter
func (r *Repository) DeleteByFilter(ctx context.Context, filter bson.M) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// KeptUsernames returns the usernames of all accounts flagged keepItem
func (r *Repository) KeptUsernames(ctx context.Context) ([]string, error) {
	cursor, err := r.collection.Find(
		ctx,
		bson.M{"keepItem": true},
		options.Find().SetProjection(bson.D{{Key: "username", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	names := []string{}
	for cursor.Next(ctx) {
		var doc struct {
			Username string `bson:"username"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		names = append(names, doc.Username)
	}
	return names, cursor.Err()
}

// CountOlderThan counts accounts created before the cutoff
func (r *Repository) CountOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$lt": cutoff}})
}

// DeleteOlderThan removes accounts created before the cutoff
func (r *Repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"createdAt": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
