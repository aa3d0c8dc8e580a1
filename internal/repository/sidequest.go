package repository

import (
	"context"
	"fmt"

	"levelup_daily/internal/model"

	"go.mongodb.org/mongo-driver/bson"
)

type sideQuestDoc struct {
	ID          string `bson:"_id"`
	Title       string `bson:"title"`
	Description string `bson:"description"`
	XPReward    int    `bson:"xp_reward"`
}

func (r *Repository) CountSideQuests(ctx context.Context) (int, error) {
	count, err := r.db.Collection(collSideQuests).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count side quests: %w", err)
	}
	return int(count), nil
}

func (r *Repository) InsertSideQuests(ctx context.Context, quests []model.SideQuest) error {
	docs := make([]interface{}, 0, len(quests))
	for _, q := range quests {
		docs = append(docs, sideQuestDoc{
			ID:          q.ID,
			Title:       q.Title,
			Description: q.Description,
			XPReward:    q.XPReward,
		})
	}

	_, err := r.db.Collection(collSideQuests).InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("failed to insert side quests: %w", err)
	}
	return nil
}

func (r *Repository) GetAllSideQuests(ctx context.Context) ([]model.SideQuest, error) {
	cursor, err := r.db.Collection(collSideQuests).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find side quests: %w", err)
	}

	var docs []sideQuestDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode side quests: %w", err)
	}

	quests := make([]model.SideQuest, 0, len(docs))
	for _, d := range docs {
		quests = append(quests, model.SideQuest{
			ID:          d.ID,
			Title:       d.Title,
			Description: d.Description,
			XPReward:    d.XPReward,
		})
	}
	return quests, nil
}
