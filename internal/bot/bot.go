package bot

import (
	"context"
	"fmt"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"sublimation-calc/internal/config"
	"sublimation-calc/internal/i18n"
	"sublimation-calc/internal/session"
)

type commandFunc func(ctx context.Context, chatID int64, args []string)

type Bot struct {
	api      *tgbotapi.BotAPI
	sender   Sender
	logger   *zap.Logger
	sessions Sessions
	profiles Profiles
	limiter  RateLimiter
	cfg      config.Telegram
	mu       sync.Mutex
	commands map[string]commandFunc
}

func New(
	cfg config.Telegram,
	sessions Sessions,
	profiles Profiles,
	limiter RateLimiter,
	logger *zap.Logger,
) (*Bot, error) {
	botAPI, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	botAPI.Debug = cfg.Debug

	logger.Info("Bot authorized",
		zap.String("username", botAPI.Self.UserName),
		zap.Int64("id", botAPI.Self.ID))

	b := newBot(botAPI, cfg, sessions, profiles, limiter, logger)
	b.api = botAPI
	return b, nil
}

func newBot(
	sender Sender,
	cfg config.Telegram,
	sessions Sessions,
	profiles Profiles,
	limiter RateLimiter,
	logger *zap.Logger,
) *Bot {
	b := &Bot{
		sender:   sender,
		logger:   logger,
		sessions: sessions,
		profiles: profiles,
		limiter:  limiter,
		cfg:      cfg,
	}
	b.registerCommands()
	return b
}

func (b *Bot) registerCommands() {
	b.commands = map[string]commandFunc{
		"start":       b.handleStart,
		"help":        b.handleHelp,
		"lang":        b.handleLang,
		"show":        b.handleShow,
		"fields":      b.handleFields,
		"set":         b.handleSet,
		"price":       b.handlePrice,
		"breakeven":   b.handleBreakEven,
		"sensitivity": b.handleSensitivity,
		"scenario":    b.handleScenario,
		"export":      b.handleExport,
		"save":        b.handleSave,
		"load":        b.handleLoad,
		"profiles":    b.handleProfiles,
		"delete":      b.handleDelete,
		"reset":       b.handleReset,
	}
}

func (b *Bot) Start(ctx context.Context) error {
	if b.api == nil {
		return fmt.Errorf("bot: telegram API not initialized")
	}

	b.logger.Info("Starting bot")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.UpdateTimeout
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Shutting down bot")
			b.api.StopReceivingUpdates()
			return nil

		case update := <-updates:
			b.mu.Lock()
			if update.Message != nil {
				b.processMessage(ctx, update.Message)
			} else if update.CallbackQuery != nil {
				b.processCallback(ctx, update.CallbackQuery)
			}
			b.mu.Unlock()
		}
	}
}

func (b *Bot) processMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	b.logger.Debug("Processing message",
		zap.Int64("chat_id", chatID),
		zap.String("text", msg.Text))

	if !msg.IsCommand() {
		b.handleMenu(ctx, chatID, nil)
		return
	}

	b.dispatch(ctx, chatID, msg.Command(), strings.Fields(msg.CommandArguments()))
}

// processCallback handles menu buttons; their data is a command line without the slash.
func (b *Bot) processCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if _, err := b.sender.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		b.logger.Warn("Failed to answer callback", zap.Error(err))
	}

	if callback.Message == nil {
		return
	}
	chatID := callback.Message.Chat.ID

	b.logger.Debug("Processing callback",
		zap.Int64("chat_id", chatID),
		zap.String("data", callback.Data))

	parts := strings.Fields(callback.Data)
	if len(parts) == 0 {
		return
	}
	b.dispatch(ctx, chatID, parts[0], parts[1:])
}

func (b *Bot) dispatch(ctx context.Context, chatID int64, command string, args []string) {
	handler, ok := b.commands[strings.ToLower(command)]
	if !ok {
		b.handleUnknownCommand(ctx, chatID)
		return
	}
	handler(ctx, chatID, args)
}

// draft loads the chat's draft. On failure the user is told and ok is false.
func (b *Bot) draft(ctx context.Context, chatID int64) (*session.Draft, i18n.Translator, bool) {
	d, err := b.sessions.Get(ctx, chatID)
	if err != nil {
		b.logger.Error("Failed to get draft",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		t := i18n.For("")
		b.sendError(chatID, t.Label("msg.internal_error"))
		return nil, t, false
	}
	return d, i18n.For(d.Language), true
}

func (b *Bot) sendMessage(msg tgbotapi.MessageConfig) {
	if _, err := b.sender.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Int64("chat_id", msg.ChatID),
			zap.String("text", msg.Text),
			zap.Error(err))
	}
}

func (b *Bot) sendText(chatID int64, text string) {
	b.sendMessage(tgbotapi.NewMessage(chatID, text))
}

// sendHTML sends a message with HTML parse mode; callers escape user text.
func (b *Bot) sendHTML(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	b.sendMessage(msg)
}

func (b *Bot) sendError(chatID int64, text string) {
	b.sendText(chatID, "❌ "+text)
}

func ownerID(chatID int64) string {
	return fmt.Sprintf("tg:%d", chatID)
}
