package bot

import (
	"bytes"
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"sublimation-calc/internal/engine"
	"sublimation-calc/internal/i18n"
	"sublimation-calc/internal/report"
)

const (
	formatCSV  = "csv"
	formatXLSX = "xlsx"

	xlsxFileName = "sublimation_report.xlsx"
)

// handleExport sends the report as documents: one CSV per table, or a single
// workbook. "/export csv <table>" limits the CSV export to one table.
func (b *Bot) handleExport(ctx context.Context, chatID int64, args []string) {
	d, t, ok := b.draft(ctx, chatID)
	if !ok {
		return
	}

	if len(args) == 0 || len(args) > 2 {
		b.sendText(chatID, t.Label("msg.export_usage"))
		return
	}
	format := strings.ToLower(args[0])
	if format != formatCSV && format != formatXLSX {
		b.sendText(chatID, t.Label("msg.export_usage"))
		return
	}

	allowed, err := b.limiter.Allow(ctx, chatID, "export")
	if err != nil {
		b.logger.Warn("Rate limit check failed",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	} else if !allowed {
		b.sendError(chatID, t.Label("msg.rate_limited"))
		return
	}

	opts := b.reportOptions(d, t)
	opts.Scenario = d.Scenario
	tables := report.Build(engine.Evaluate(d.Inputs), opts)

	if format == formatXLSX {
		b.sendWorkbook(chatID, t, tables)
		return
	}

	if len(args) == 2 {
		table, found := report.Find(tables, strings.ToLower(args[1]))
		if !found {
			b.sendText(chatID, t.Label("msg.export_usage"))
			return
		}
		tables = []report.Table{table}
	}
	for _, table := range tables {
		b.sendCSV(chatID, t, table)
	}
}

func (b *Bot) sendCSV(chatID int64, t i18n.Translator, table report.Table) {
	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, table); err != nil {
		b.failed(chatID, t, err)
		return
	}

	b.sendDocument(chatID, report.FileName(table, formatCSV), buf.Bytes(), t.Format("msg.export_caption", table.Title))
}

func (b *Bot) sendWorkbook(chatID int64, t i18n.Translator, tables []report.Table) {
	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, tables); err != nil {
		b.failed(chatID, t, err)
		return
	}

	b.sendDocument(chatID, xlsxFileName, buf.Bytes(), t.Format("msg.export_caption", "XLSX"))
}

func (b *Bot) sendDocument(chatID int64, name string, data []byte, caption string) {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	doc.Caption = caption

	if _, err := b.sender.Send(doc); err != nil {
		b.logger.Error("Failed to send document",
			zap.Int64("chat_id", chatID),
			zap.String("file", name),
			zap.Error(err))
	}
}
