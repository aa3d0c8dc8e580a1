package repository

import (
	"context"
	"fmt"
	"time"

	"levelup_daily/pkg/logger"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrQuestCompleted = errors.New("quest already completed")
)

const (
	collUsers         = "users"
	collQuests        = "quests"
	collPowerUps      = "power_ups"
	collPowerUpLogs   = "power_up_logs"
	collBadGuys       = "bad_guys"
	collBadGuyDefeats = "bad_guy_defeats"
	collSideQuests    = "side_quests"
)

type Config struct {
	URI  string `yaml:"uri"`
	Name string `yaml:"name"`
}

type Repository struct {
	client *mongo.Client
	db     *mongo.Database
}

func New(cfg Config) (*Repository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	r := &Repository{
		client: client,
		db:     client.Database(cfg.Name),
	}

	if err := r.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	logger.Logger().Info("Connected to database successfully")

	return r, nil
}

func (r *Repository) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return r.client.Disconnect(ctx)
}

// ensureIndexes sets up the unique email constraint and the owner lookups
// every user-scoped collection is queried by.
func (r *Repository) ensureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(collUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(err, "users email index")
	}

	for _, coll := range []string{collQuests, collPowerUps, collPowerUpLogs, collBadGuys, collBadGuyDefeats} {
		_, err := r.db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "user_id", Value: 1}},
		})
		if err != nil {
			return errors.Wrapf(err, "%s user_id index", coll)
		}
	}

	return nil
}
