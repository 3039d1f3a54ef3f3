package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"sublimation-calc/internal/i18n"
	"sublimation-calc/internal/report"
)

// mainMenuKeyboard buttons carry a command line without the slash.
func mainMenuKeyboard(t i18n.Translator) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t.Label(report.TableSummary), "show"),
			tgbotapi.NewInlineKeyboardButtonData(t.Label(report.TableBreakEven), "breakeven"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t.Label(report.TableSensitivity), "sensitivity"),
			tgbotapi.NewInlineKeyboardButtonData(t.Label(report.TableScenario), "scenario"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📄 CSV", "export csv"),
			tgbotapi.NewInlineKeyboardButtonData("📗 XLSX", "export xlsx"),
		),
	)
}
