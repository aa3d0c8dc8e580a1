package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"levelup_daily/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userDoc struct {
	ID               string     `bson:"_id"`
	Email            string     `bson:"email"`
	Username         string     `bson:"username"`
	PasswordHash     string     `bson:"password_hash"`
	TotalXP          int        `bson:"total_xp"`
	Level            int        `bson:"level"`
	CurrentStreak    int        `bson:"current_streak"`
	LongestStreak    int        `bson:"longest_streak"`
	LastActivityDate *time.Time `bson:"last_activity_date"`
	Badges           []string   `bson:"badges"`
	CreatedAt        time.Time  `bson:"created_at"`
}

func (d *userDoc) toModel() *model.User {
	return &model.User{
		ID:               d.ID,
		Email:            d.Email,
		Username:         d.Username,
		PasswordHash:     d.PasswordHash,
		TotalXP:          d.TotalXP,
		Level:            d.Level,
		CurrentStreak:    d.CurrentStreak,
		LongestStreak:    d.LongestStreak,
		LastActivityDate: d.LastActivityDate,
		Badges:           d.Badges,
		CreatedAt:        d.CreatedAt,
	}
}

func (r *Repository) CreateUser(ctx context.Context, user *model.User) error {
	doc := userDoc{
		ID:               user.ID,
		Email:            user.Email,
		Username:         user.Username,
		PasswordHash:     user.PasswordHash,
		TotalXP:          user.TotalXP,
		Level:            user.Level,
		CurrentStreak:    user.CurrentStreak,
		LongestStreak:    user.LongestStreak,
		LastActivityDate: user.LastActivityDate,
		Badges:           user.Badges,
		CreatedAt:        user.CreatedAt,
	}
	if doc.Badges == nil {
		doc.Badges = []string{}
	}

	_, err := r.db.Collection(collUsers).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	return r.findUser(ctx, bson.M{"_id": id})
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findUser(ctx, bson.M{"email": email})
}

func (r *Repository) findUser(ctx context.Context, filter bson.M) (*model.User, error) {
	var doc userDoc
	err := r.db.Collection(collUsers).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return doc.toModel(), nil
}

// AddXP atomically increments the user's XP counter and returns the new total,
// so concurrent reward actions cannot lose updates.
func (r *Repository) AddXP(ctx context.Context, id string, amount int) (int, error) {
	var doc userDoc
	err := r.db.Collection(collUsers).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"total_xp": amount}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to add xp: %w", err)
	}
	return doc.TotalXP, nil
}

func (r *Repository) SetLevel(ctx context.Context, id string, level int) error {
	result, err := r.db.Collection(collUsers).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"level": level}},
	)
	if err != nil {
		return fmt.Errorf("failed to set level: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) UpdateStreak(ctx context.Context, id string, current, longest int, lastActivity time.Time) error {
	result, err := r.db.Collection(collUsers).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"current_streak":     current,
			"longest_streak":     longest,
			"last_activity_date": lastActivity,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update streak: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddBadges appends badge names with set semantics: re-awarding an already
// held badge never duplicates it.
func (r *Repository) AddBadges(ctx context.Context, id string, names []string) error {
	if len(names) == 0 {
		return nil
	}

	result, err := r.db.Collection(collUsers).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$addToSet": bson.M{"badges": bson.M{"$each": names}}},
	)
	if err != nil {
		return fmt.Errorf("failed to add badges: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
