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

type powerUpDoc struct {
	ID          string    `bson:"_id"`
	UserID      string    `bson:"user_id"`
	Title       string    `bson:"title"`
	Description string    `bson:"description"`
	XPReward    int       `bson:"xp_reward"`
	CreatedAt   time.Time `bson:"created_at"`
}

type powerUpLogDoc struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	PowerUpID string    `bson:"power_up_id"`
	LoggedAt  time.Time `bson:"logged_at"`
}

func (d *powerUpDoc) toModel() *model.PowerUp {
	return &model.PowerUp{
		ID:          d.ID,
		UserID:      d.UserID,
		Title:       d.Title,
		Description: d.Description,
		XPReward:    d.XPReward,
		CreatedAt:   d.CreatedAt,
	}
}

func (r *Repository) CreatePowerUp(ctx context.Context, powerUp *model.PowerUp) error {
	doc := powerUpDoc{
		ID:          powerUp.ID,
		UserID:      powerUp.UserID,
		Title:       powerUp.Title,
		Description: powerUp.Description,
		XPReward:    powerUp.XPReward,
		CreatedAt:   powerUp.CreatedAt,
	}

	_, err := r.db.Collection(collPowerUps).InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to insert power-up: %w", err)
	}
	return nil
}

func (r *Repository) GetPowerUpsByUser(ctx context.Context, userID string) ([]*model.PowerUp, error) {
	cursor, err := r.db.Collection(collPowerUps).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to find power-ups: %w", err)
	}

	var docs []powerUpDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode power-ups: %w", err)
	}

	powerUps := make([]*model.PowerUp, 0, len(docs))
	for i := range docs {
		powerUps = append(powerUps, docs[i].toModel())
	}
	return powerUps, nil
}

func (r *Repository) GetPowerUpByID(ctx context.Context, id, userID string) (*model.PowerUp, error) {
	var doc powerUpDoc
	err := r.db.Collection(collPowerUps).FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get power-up: %w", err)
	}
	return doc.toModel(), nil
}

func (r *Repository) CreatePowerUpLog(ctx context.Context, log *model.PowerUpLog) error {
	doc := powerUpLogDoc{
		ID:        log.ID,
		UserID:    log.UserID,
		PowerUpID: log.PowerUpID,
		LoggedAt:  log.LoggedAt,
	}

	_, err := r.db.Collection(collPowerUpLogs).InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to insert power-up log: %w", err)
	}
	return nil
}
