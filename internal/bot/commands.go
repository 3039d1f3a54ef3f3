package bot

import (
	"context"
	"errors"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"sublimation-calc/internal/engine"
	"sublimation-calc/internal/i18n"
	"sublimation-calc/internal/report"
	"sublimation-calc/internal/session"
	"sublimation-calc/internal/storage"
)

func (b *Bot) handleStart(ctx context.Context, chatID int64, _ []string) {
	_, t, ok := b.draft(ctx, chatID)
	if !ok {
		return
	}

	msg := tgbotapi.NewMessage(chatID, t.Label("msg.welcome"))
	msg.ReplyMarkup = mainMenuKeyboard(t)
	b.sendMessage(msg)
}

func (b *Bot) handleMenu(ctx context.Context, chatID int64, _ []string) {
	_, t, ok := b.draft(ctx, chatID)
	if !ok {
		return
	}

	msg := tgbotapi.NewMessage(chatID, t.Label("msg.menu"))
	msg.ReplyMarkup = mainMenuKeyboard(t)
	b.sendMessage(msg)
}

func (b *Bot) handleHelp(ctx context.Context, chatID int64, _ []string) {
	_, t, ok := b.draft(ctx, chatID)
	if !ok {
		return
	}
	b.sendText(chatID, t.Label("msg.help"))
}

func (b *Bot) handleUnknownCommand(ctx context.Context, chatID int64) {
	_, t, ok := b.draft(ctx, chatID)
	if !ok {
		return
	}
	b.sendText(chatID, t.Label("msg.unknown_command"))
}

func (b *Bot) handleLang(ctx context.Context, chatID int64, args []string) {
	_, t, ok := b.draft(ctx, chatID)
	if !ok {
		return
	}

	if len(args) != 1 {
		b.sendText(chatID, t.Label("msg.lang_usage"))
		return
	}
	lang, valid := i18n.Parse(args[0])
	if !valid {
		b.sendText(chatID, t.Label("msg.lang_usage"))
		return
	}

	d, err := b.sessions.SetLanguage(ctx, chatID, string(lang))
	if b.failed(chatID, t, err) {
		return
	}
	b.sendText(chatID, i18n.For(d.Language).Label("msg.lang_set"))
}

func (b *Bot) handleShow(ctx context.Context, chatID int64, _ []string) {
	d, t, ok := b.draft(ctx, chatID)
	if !ok {
		return
	}

	e := engine.Evaluate(d.Inputs)
	tables := report.Build(e, b.reportOptions(d, t))

	text := renderTables(tables,
		report.TableCapacity,
		report.TableConsumption,
		report.TableVariableCosts,
		report.TableFixedCosts,
		report.TableSummary)
	if warning := downtimeWarning(t, e); warning != "" {
		text += "\n\n" + html.EscapeString(warning)
	}
	text += "\n\n" + html.EscapeString(breakEvenMessage(t, e))

	b.sendHTML(chatID, text)
}

func (b *Bot) handleFields(ctx context.Context, chatID int64, _ []string) {
	d, t, ok := b.draft(ctx, chatID)
	if !ok {
		return
	}
	b.sendHTML(chatID, renderFields(t, d.Inputs, engine.Fields))
}

func (b *Bot) handleSet(ctx context.Context, chatID int64, args []string) {
	_, t, ok := b.draft(ctx, chatID)
	if !ok {
		return
	}

	if len(args) != 2 {
		b.sendText(chatID, t.Label("msg.set_usage"))
		return
	}
	b.setField(ctx, chatID, t, strings.ToLower(args[0]), args[1])
}

func (b *Bot) handlePrice(ctx context.Context, chatID int64, args []string) {
	_, t, ok := b.draft(ctx, chatID)
	if !ok {
		return
	}

	if len(args) != 1 {
		b.sendText(chatID, t.Label("msg.set_usage"))
		return
	}
	b.setField(ctx, chatID, t, "sell_price", args[0])
}

func (b *Bot) setField(ctx context.Context, chatID int64, t i18n.Translator, key, raw string) {
	value, err := parseNumber(raw)
	if err != nil {
		b.sendError(chatID, t.Format("msg.invalid_number", raw))
		return
	}

	_, err = b.sessions.SetField(ctx, chatID, key, value)
	if b.failed(chatID, t, err) {
		return
	}
	b.sendText(chatID, t.Format("msg.field_set", t.Label("field."+key), formatNumber(value)))
}

func (b *Bot) handleBreakEven(ctx context.Context, chatID int64, _ []string) {
	d, t, ok := b.draft(ctx, chatID)
	if !ok {
		return
	}

	e := engine.Evaluate(d.Inputs)
	tables := report.Build(e, b.reportOptions(d, t))

	text := renderTables(tables, report.TableBreakEven) + "\n\n" + html.EscapeString(breakEvenMessage(t, e))
	b.sendHTML(chatID, text)
}

func (b *Bot) handleSensitivity(ctx context.Context, chatID int64, args []string) {
	d, t, ok := b.draft(ctx, chatID)
	if !ok {
		return
	}

	if len(args) > 0 {
		percent, err := parseNumber(strings.TrimSuffix(args[0], "%"))
		if err != nil {
			b.sendError(chatID, t.Format("msg.invalid_number", args[0]))
			return
		}
		d, err = b.sessions.SetSensitivityPercent(ctx, chatID, percent)
		if b.failed(chatID, t, err) {
			return
		}
	}

	tables := report.Build(engine.Evaluate(d.Inputs), b.reportOptions(d, t))

	text := html.EscapeString(t.Format("msg.sensitivity_set", formatNumber(d.SensitivityPercent))) +
		"\n\n" + renderTables(tables, report.TableSensitivity)
	b.sendHTML(chatID, text)
}

// handleScenario shows the comparison, or edits the scenario with
// "set <field> <value>" and "reset".
func (b *Bot) handleScenario(ctx context.Context, chatID int64, args []string) {
	d, t, ok := b.draft(ctx, chatID)
	if !ok {
		return
	}

	if len(args) > 0 {
		var err error

		switch strings.ToLower(args[0]) {
		case "set":
			if len(args) != 3 {
				b.sendText(chatID, t.Label("msg.scenario_usage"))
				return
			}
			value, perr := parseNumber(args[2])
			if perr != nil {
				b.sendError(chatID, t.Format("msg.invalid_number", args[2]))
				return
			}
			d, err = b.sessions.SetScenarioField(ctx, chatID, strings.ToLower(args[1]), value)
		case "reset":
			if _, err = b.sessions.ResetScenario(ctx, chatID); err == nil {
				b.sendText(chatID, t.Label("msg.scenario_reset"))
				return
			}
		default:
			b.sendText(chatID, t.Label("msg.scenario_usage"))
			return
		}

		if b.failed(chatID, t, err) {
			return
		}
	}

	alt := d.ScenarioOrBase()
	opts := b.reportOptions(d, t)
	opts.Scenario = &alt

	tables := report.Build(engine.Evaluate(d.Inputs), opts)
	b.sendHTML(chatID, renderTables(tables, report.TableScenario))
}

func (b *Bot) handleSave(ctx context.Context, chatID int64, args []string) {
	d, t, ok := b.draft(ctx, chatID)
	if !ok {
		return
	}

	p, err := b.profiles.SaveProfile(ctx, ownerID(chatID), strings.Join(args, " "), d.Inputs)
	if b.profileFailed(chatID, t, "", err) {
		return
	}
	b.sendText(chatID, t.Format("msg.saved", p.Name))
}

func (b *Bot) handleLoad(ctx context.Context, chatID int64, args []string) {
	_, t, ok := b.draft(ctx, chatID)
	if !ok {
		return
	}

	name := strings.Join(args, " ")
	if _, err := storage.NormalizeProfileName(name); err != nil {
		b.sendError(chatID, t.Label("msg.name_usage"))
		return
	}

	p, err := b.profiles.GetProfile(ctx, ownerID(chatID), name)
	if b.profileFailed(chatID, t, name, err) {
		return
	}

	_, err = b.sessions.SetInputs(ctx, chatID, p.Inputs)
	if b.failed(chatID, t, err) {
		return
	}
	b.sendText(chatID, t.Format("msg.loaded", p.Name))
}

func (b *Bot) handleDelete(ctx context.Context, chatID int64, args []string) {
	_, t, ok := b.draft(ctx, chatID)
	if !ok {
		return
	}

	name := strings.Join(args, " ")
	if _, err := storage.NormalizeProfileName(name); err != nil {
		b.sendError(chatID, t.Label("msg.name_usage"))
		return
	}

	err := b.profiles.DeleteProfile(ctx, ownerID(chatID), name)
	if b.profileFailed(chatID, t, name, err) {
		return
	}
	b.sendText(chatID, t.Format("msg.deleted", strings.TrimSpace(name)))
}

func (b *Bot) handleProfiles(ctx context.Context, chatID int64, _ []string) {
	_, t, ok := b.draft(ctx, chatID)
	if !ok {
		return
	}

	profiles, err := b.profiles.ListProfiles(ctx, ownerID(chatID))
	if b.failed(chatID, t, err) {
		return
	}
	if len(profiles) == 0 {
		b.sendText(chatID, t.Label("msg.no_profiles"))
		return
	}

	lines := []string{t.Label("msg.profiles")}
	for _, p := range profiles {
		lines = append(lines, "• "+p.Name)
	}
	b.sendText(chatID, strings.Join(lines, "\n"))
}

func (b *Bot) handleReset(ctx context.Context, chatID int64, _ []string) {
	_, t, ok := b.draft(ctx, chatID)
	if !ok {
		return
	}

	_, err := b.sessions.Reset(ctx, chatID)
	if b.failed(chatID, t, err) {
		return
	}
	b.sendText(chatID, t.Label("msg.reset"))
}

func (b *Bot) reportOptions(d *session.Draft, t i18n.Translator) report.Options {
	return report.Options{
		SensitivityPercent: d.SensitivityPercent,
		Labeler:            t,
	}
}

// failed reports err to the user. Field errors are shown as is, anything else
// is logged and replaced with a generic message.
func (b *Bot) failed(chatID int64, t i18n.Translator, err error) bool {
	if err == nil {
		return false
	}
	if errs, ok := inputErrors(err); ok {
		b.sendError(chatID, validationMessage(t, errs))
		return true
	}

	b.logger.Error("Command failed",
		zap.Int64("chat_id", chatID),
		zap.Error(err))
	b.sendError(chatID, t.Label("msg.internal_error"))
	return true
}

func (b *Bot) profileFailed(chatID int64, t i18n.Translator, name string, err error) bool {
	switch {
	case errors.Is(err, storage.ErrInvalidProfileName):
		b.sendError(chatID, t.Label("msg.name_usage"))
		return true
	case errors.Is(err, storage.ErrProfileNotFound):
		b.sendError(chatID, t.Format("msg.profile_not_found", strings.TrimSpace(name)))
		return true
	default:
		return b.failed(chatID, t, err)
	}
}
