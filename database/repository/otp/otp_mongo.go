package otpRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"citixo/database"
	"citixo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOTPRepo implements OTPRepository using MongoDB. Expired records are
// reaped by a TTL index on expires_at; verification still checks the
// timestamp explicitly since TTL deletion lags.
type MongoOTPRepo struct {
	coll *mongo.Collection
}

// NewMongoOTPRepo creates a new instance of OTPRepository using MongoDB.
func NewMongoOTPRepo() OTPRepository {
	repo := &MongoOTPRepo{coll: database.Collection("otps")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoOTPRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "purpose", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "expires_at", Value: 1}}, Options: options.Index().SetExpireAfterSeconds(0)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Put upserts the record for its (email, purpose) pair, replacing any
// previous code.
func (r *MongoOTPRepo) Put(rec *models.OTPRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	rec.CreatedAt = time.Now()
	filter := bson.M{"email": rec.Email, "purpose": rec.Purpose}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, rec, opts); err != nil {
		return fmt.Errorf("failed to store OTP record: %w", err)
	}
	return nil
}

// Get retrieves the record for (email, purpose). Returns (nil, nil) when no
// record exists.
func (r *MongoOTPRepo) Get(email, purpose string) (*models.OTPRecord, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var rec models.OTPRecord
	err := r.coll.FindOne(ctx, bson.M{"email": email, "purpose": purpose}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch OTP record for %s: %w", email, err)
	}
	return &rec, nil
}

// IncrementAttempts bumps the failed-attempt counter.
func (r *MongoOTPRepo) IncrementAttempts(email, purpose string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"email": email, "purpose": purpose}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"attempts": 1}})
	if err != nil {
		return fmt.Errorf("failed to increment OTP attempts for %s: %w", email, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("OTP record for %s not found", email)
	}
	return nil
}

// MarkUsed flags the record as consumed.
func (r *MongoOTPRepo) MarkUsed(email, purpose string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"email": email, "purpose": purpose}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"is_used": true}})
	if err != nil {
		return fmt.Errorf("failed to mark OTP used for %s: %w", email, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("OTP record for %s not found", email)
	}
	return nil
}
