package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devconnect/devconnect-api/internal/core/domain"
)

const collectionProfiles = "profiles"

// ProfileRepository persists profile aggregates as whole documents.
type ProfileRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{db: db, col: db.Collection(collectionProfiles)}
}

// FindByUserID retrieves the profile owned by the given user.
func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Profile
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return &p, nil
}

// FindAll returns every profile.
func (r *ProfileRepository) FindAll(ctx context.Context) ([]*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer cur.Close(ctx)

	var profiles []*domain.Profile
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	return profiles, nil
}

// Save writes the whole profile document. A profile without an ID is
// inserted with version 1; otherwise the document is replaced only when the
// stored version still matches, and the version is bumped. A mismatch means
// another writer replaced the document first: ErrVersionConflict.
func (r *ProfileRepository) Save(ctx context.Context, profile *domain.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if profile.ID == "" {
		profile.ID = primitive.NewObjectID().Hex()
		profile.Version = 1
		if _, err := r.col.InsertOne(ctx, profile); err != nil {
			return fmt.Errorf("insert profile: %w", err)
		}
		return nil
	}

	prev := profile.Version
	profile.Version = prev + 1
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": profile.ID, "version": prev}, profile)
	if err != nil {
		profile.Version = prev
		return fmt.Errorf("replace profile: %w", err)
	}
	if res.MatchedCount == 0 {
		profile.Version = prev
		return domain.ErrVersionConflict
	}
	return nil
}

// DeleteWithUser removes the profile and its owning user inside a single
// transaction, so a failure on the second delete rolls back the first.
func (r *ProfileRepository) DeleteWithUser(ctx context.Context, userID string) error {
	session, err := r.db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.col.DeleteOne(sc, bson.M{"user_id": userID}); err != nil {
			return nil, fmt.Errorf("delete profile: %w", err)
		}
		if _, err := r.db.Collection(collectionUsers).DeleteOne(sc, bson.M{"_id": userID}); err != nil {
			return nil, fmt.Errorf("delete user: %w", err)
		}
		return nil, nil
	})
	return err
}

// EnsureIndexes creates the unique user_id index on the profiles collection,
// enforcing at most one profile per user.
func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
