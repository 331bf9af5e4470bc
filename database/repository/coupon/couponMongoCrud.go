package couponRepo

import (
	"errors"
	"fmt"
	"time"

	"citixo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateCode reports a unique-index collision on the coupon code.
var ErrDuplicateCode = errors.New("coupon code already exists")

// Create inserts a new coupon document.
func (r *MongoCouponRepo) Create(c *models.Coupon) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.UsedBy == nil {
		c.UsedBy = []models.CouponUsage{}
	}

	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateCode
		}
		return fmt.Errorf("failed to create coupon: %w", err)
	}
	return nil
}

// GetByCode retrieves a coupon by its code. Returns (nil, nil) when no
// coupon matches.
func (r *MongoCouponRepo) GetByCode(code string) (*models.Coupon, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var c models.Coupon
	err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch coupon %s: %w", code, err)
	}
	return &c, nil
}

// Update rewrites an existing coupon document.
func (r *MongoCouponRepo) Update(c *models.Coupon) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	c.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"code": c.Code}, bson.M{"$set": c})
	if err != nil {
		return fmt.Errorf("failed to update coupon %s: %w", c.Code, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("coupon %s not found", c.Code)
	}
	return nil
}

// Delete removes a coupon document by code.
func (r *MongoCouponRepo) Delete(code string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"code": code})
	if err != nil {
		return fmt.Errorf("failed to delete coupon %s: %w", code, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("coupon %s not found", code)
	}
	return nil
}

// List returns all coupons, newest first.
func (r *MongoCouponRepo) List() ([]models.Coupon, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	defer cursor.Close(ctx)

	var coupons []models.Coupon
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, fmt.Errorf("failed to decode coupons: %w", err)
	}
	return coupons, nil
}

// RecordUsage appends a usedBy entry and increments usageCount atomically.
func (r *MongoCouponRepo) RecordUsage(code string, usage models.CouponUsage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$inc":  bson.M{"usage_count": 1},
		"$push": bson.M{"used_by": usage},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"code": code}, update)
	if err != nil {
		return fmt.Errorf("failed to record usage for coupon %s: %w", code, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("coupon %s not found", code)
	}
	return nil
}
