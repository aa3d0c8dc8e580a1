package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"levelup_daily/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type badGuyDoc struct {
	ID             string    `bson:"_id"`
	UserID         string    `bson:"user_id"`
	Title          string    `bson:"title"`
	Description    string    `bson:"description"`
	MaxHP          int       `bson:"max_hp"`
	CurrentHP      int       `bson:"current_hp"`
	DefeatXPReward int       `bson:"defeat_xp_reward"`
	CreatedAt      time.Time `bson:"created_at"`
}

type badGuyDefeatDoc struct {
	ID          string    `bson:"_id"`
	UserID      string    `bson:"user_id"`
	BadGuyID    string    `bson:"bad_guy_id"`
	DamageDealt int       `bson:"damage_dealt"`
	LoggedAt    time.Time `bson:"logged_at"`
}

func (d *badGuyDoc) toModel() *model.BadGuy {
	return &model.BadGuy{
		ID:             d.ID,
		UserID:         d.UserID,
		Title:          d.Title,
		Description:    d.Description,
		MaxHP:          d.MaxHP,
		CurrentHP:      d.CurrentHP,
		DefeatXPReward: d.DefeatXPReward,
		CreatedAt:      d.CreatedAt,
	}
}

func (r *Repository) CreateBadGuy(ctx context.Context, badGuy *model.BadGuy) error {
	doc := badGuyDoc{
		ID:             badGuy.ID,
		UserID:         badGuy.UserID,
		Title:          badGuy.Title,
		Description:    badGuy.Description,
		MaxHP:          badGuy.MaxHP,
		CurrentHP:      badGuy.CurrentHP,
		DefeatXPReward: badGuy.DefeatXPReward,
		CreatedAt:      badGuy.CreatedAt,
	}

	_, err := r.db.Collection(collBadGuys).InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to insert bad guy: %w", err)
	}
	return nil
}

func (r *Repository) GetBadGuysByUser(ctx context.Context, userID string) ([]*model.BadGuy, error) {
	cursor, err := r.db.Collection(collBadGuys).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to find bad guys: %w", err)
	}

	var docs []badGuyDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode bad guys: %w", err)
	}

	badGuys := make([]*model.BadGuy, 0, len(docs))
	for i := range docs {
		badGuys = append(badGuys, docs[i].toModel())
	}
	return badGuys, nil
}

func (r *Repository) GetBadGuyByID(ctx context.Context, id, userID string) (*model.BadGuy, error) {
	var doc badGuyDoc
	err := r.db.Collection(collBadGuys).FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bad guy: %w", err)
	}
	return doc.toModel(), nil
}

func (r *Repository) UpdateBadGuyHP(ctx context.Context, id string, hp int) error {
	result, err := r.db.Collection(collBadGuys).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"current_hp": hp}},
	)
	if err != nil {
		return fmt.Errorf("failed to update bad guy hp: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) CreateDefeatLog(ctx context.Context, defeat *model.BadGuyDefeat) error {
	doc := badGuyDefeatDoc{
		ID:          defeat.ID,
		UserID:      defeat.UserID,
		BadGuyID:    defeat.BadGuyID,
		DamageDealt: defeat.DamageDealt,
		LoggedAt:    defeat.LoggedAt,
	}

	_, err := r.db.Collection(collBadGuyDefeats).InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to insert defeat log: %w", err)
	}
	return nil
}
