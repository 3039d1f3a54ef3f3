package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"sublimation-calc/internal/engine"
	"sublimation-calc/internal/session"
	"sublimation-calc/internal/storage"
)

// Sender is the part of the Telegram API the handlers use.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Sessions interface {
	Get(ctx context.Context, chatID int64) (*session.Draft, error)
	SetField(ctx context.Context, chatID int64, field string, value float64) (*session.Draft, error)
	SetScenarioField(ctx context.Context, chatID int64, field string, value float64) (*session.Draft, error)
	ResetScenario(ctx context.Context, chatID int64) (*session.Draft, error)
	SetInputs(ctx context.Context, chatID int64, in engine.Inputs) (*session.Draft, error)
	SetLanguage(ctx context.Context, chatID int64, lang string) (*session.Draft, error)
	SetSensitivityPercent(ctx context.Context, chatID int64, percent float64) (*session.Draft, error)
	Reset(ctx context.Context, chatID int64) (*session.Draft, error)
}

type Profiles interface {
	SaveProfile(ctx context.Context, ownerID, name string, in engine.Inputs) (*storage.Profile, error)
	GetProfile(ctx context.Context, ownerID, name string) (*storage.Profile, error)
	ListProfiles(ctx context.Context, ownerID string) ([]storage.Profile, error)
	DeleteProfile(ctx context.Context, ownerID, name string) error
}

type RateLimiter interface {
	Allow(ctx context.Context, chatID int64, action string) (bool, error)
}

var (
	_ Sender      = (*tgbotapi.BotAPI)(nil)
	_ Sessions    = (*session.Manager)(nil)
	_ Profiles    = (*storage.Storage)(nil)
	_ RateLimiter = (*session.Limiter)(nil)
)
