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

type questDoc struct {
	ID          string     `bson:"_id"`
	UserID      string     `bson:"user_id"`
	Title       string     `bson:"title"`
	Description string     `bson:"description"`
	QuestType   string     `bson:"quest_type"`
	Status      string     `bson:"status"`
	XPReward    int        `bson:"xp_reward"`
	Deadline    *time.Time `bson:"deadline"`
	CreatedAt   time.Time  `bson:"created_at"`
	CompletedAt *time.Time `bson:"completed_at"`
}

func (d *questDoc) toModel() *model.Quest {
	return &model.Quest{
		ID:          d.ID,
		UserID:      d.UserID,
		Title:       d.Title,
		Description: d.Description,
		QuestType:   model.QuestType(d.QuestType),
		Status:      model.QuestStatus(d.Status),
		XPReward:    d.XPReward,
		Deadline:    d.Deadline,
		CreatedAt:   d.CreatedAt,
		CompletedAt: d.CompletedAt,
	}
}

func (r *Repository) CreateQuest(ctx context.Context, quest *model.Quest) error {
	doc := questDoc{
		ID:          quest.ID,
		UserID:      quest.UserID,
		Title:       quest.Title,
		Description: quest.Description,
		QuestType:   string(quest.QuestType),
		Status:      string(quest.Status),
		XPReward:    quest.XPReward,
		Deadline:    quest.Deadline,
		CreatedAt:   quest.CreatedAt,
		CompletedAt: quest.CompletedAt,
	}

	_, err := r.db.Collection(collQuests).InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to insert quest: %w", err)
	}
	return nil
}

func (r *Repository) GetQuestsByUser(ctx context.Context, userID string) ([]*model.Quest, error) {
	cursor, err := r.db.Collection(collQuests).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to find quests: %w", err)
	}

	var docs []questDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode quests: %w", err)
	}

	quests := make([]*model.Quest, 0, len(docs))
	for i := range docs {
		quests = append(quests, docs[i].toModel())
	}
	return quests, nil
}

func (r *Repository) GetQuestByID(ctx context.Context, id, userID string) (*model.Quest, error) {
	var doc questDoc
	err := r.db.Collection(collQuests).FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get quest: %w", err)
	}
	return doc.toModel(), nil
}

// MarkQuestDone flips the quest to Done. The filter excludes already-done
// quests, so a racing second completion matches nothing and reports
// ErrQuestCompleted instead of double-crediting.
func (r *Repository) MarkQuestDone(ctx context.Context, id, userID string, completedAt time.Time) error {
	result, err := r.db.Collection(collQuests).UpdateOne(ctx,
		bson.M{"_id": id, "user_id": userID, "status": bson.M{"$ne": string(model.QuestStatusDone)}},
		bson.M{"$set": bson.M{
			"status":       string(model.QuestStatusDone),
			"completed_at": completedAt,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to complete quest: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrQuestCompleted
	}
	return nil
}

func (r *Repository) DeleteQuest(ctx context.Context, id, userID string) error {
	result, err := r.db.Collection(collQuests).DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete quest: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) CountQuestsCreatedSince(ctx context.Context, userID string, since time.Time) (int, error) {
	count, err := r.db.Collection(collQuests).CountDocuments(ctx, bson.M{
		"user_id":    userID,
		"created_at": bson.M{"$gte": since},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count quests: %w", err)
	}
	return int(count), nil
}

func (r *Repository) CountQuestsCompletedSince(ctx context.Context, userID string, since time.Time) (int, error) {
	count, err := r.db.Collection(collQuests).CountDocuments(ctx, bson.M{
		"user_id":      userID,
		"status":       string(model.QuestStatusDone),
		"completed_at": bson.M{"$gte": since},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count completed quests: %w", err)
	}
	return int(count), nil
}
