package service

import (
	"context"
	"errors"
	"time"

	"levelup_daily/internal/model"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailTaken            = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrNotFound              = errors.New("not found")
	ErrQuestAlreadyCompleted = errors.New("quest already completed")
	ErrNoSideQuests          = errors.New("no side quest available")
)

type UserServiceI interface {
	Register(ctx context.Context, email, username, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetDashboard(ctx context.Context, userID string) (*model.Dashboard, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	AddXP(ctx context.Context, id string, amount int) (int, error)
	SetLevel(ctx context.Context, id string, level int) error
	UpdateStreak(ctx context.Context, id string, current, longest int, lastActivity time.Time) error
	AddBadges(ctx context.Context, id string, names []string) error
}

// ProgressionI is the fixed reward sequence run after every rewarding action.
type ProgressionI interface {
	AwardXP(ctx context.Context, userID string, amount int) error
	UpdateStreak(ctx context.Context, userID string) error
	CheckAndAwardBadges(ctx context.Context, userID string) error
	ApplyReward(ctx context.Context, userID string, xp int, withStreak bool) error
}

type QuestServiceI interface {
	List(ctx context.Context, userID string) ([]*model.Quest, error)
	Create(ctx context.Context, userID string, title, description string, questType model.QuestType, deadline *time.Time) (*model.Quest, error)
	Complete(ctx context.Context, userID, questID string) (int, error)
	Delete(ctx context.Context, userID, questID string) error
}

type QuestRepository interface {
	CreateQuest(ctx context.Context, quest *model.Quest) error
	GetQuestsByUser(ctx context.Context, userID string) ([]*model.Quest, error)
	GetQuestByID(ctx context.Context, id, userID string) (*model.Quest, error)
	MarkQuestDone(ctx context.Context, id, userID string, completedAt time.Time) error
	DeleteQuest(ctx context.Context, id, userID string) error
	CountQuestsCreatedSince(ctx context.Context, userID string, since time.Time) (int, error)
	CountQuestsCompletedSince(ctx context.Context, userID string, since time.Time) (int, error)
}

type PowerUpServiceI interface {
	List(ctx context.Context, userID string) ([]*model.PowerUp, error)
	Create(ctx context.Context, userID, title, description string) (*model.PowerUp, error)
	Log(ctx context.Context, userID, powerUpID string) (int, error)
}

type PowerUpRepository interface {
	CreatePowerUp(ctx context.Context, powerUp *model.PowerUp) error
	GetPowerUpsByUser(ctx context.Context, userID string) ([]*model.PowerUp, error)
	GetPowerUpByID(ctx context.Context, id, userID string) (*model.PowerUp, error)
	CreatePowerUpLog(ctx context.Context, log *model.PowerUpLog) error
}

type BadGuyServiceI interface {
	List(ctx context.Context, userID string) ([]*model.BadGuy, error)
	Create(ctx context.Context, userID, title, description string, maxHP int) (*model.BadGuy, error)
	Defeat(ctx context.Context, userID, badGuyID string, damage int) (*DefeatResult, error)
}

type BadGuyRepository interface {
	CreateBadGuy(ctx context.Context, badGuy *model.BadGuy) error
	GetBadGuysByUser(ctx context.Context, userID string) ([]*model.BadGuy, error)
	GetBadGuyByID(ctx context.Context, id, userID string) (*model.BadGuy, error)
	UpdateBadGuyHP(ctx context.Context, id string, hp int) error
	CreateDefeatLog(ctx context.Context, defeat *model.BadGuyDefeat) error
}

type SideQuestServiceI interface {
	Daily(ctx context.Context) (*model.SideQuest, error)
	Complete(ctx context.Context, userID string) (*model.SideQuest, error)
}

type SideQuestRepository interface {
	CountSideQuests(ctx context.Context) (int, error)
	InsertSideQuests(ctx context.Context, quests []model.SideQuest) error
	GetAllSideQuests(ctx context.Context) ([]model.SideQuest, error)
}
