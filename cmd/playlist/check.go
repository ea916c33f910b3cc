package main

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlist/internal/data"
	"github.com/hazadus/go-playlist/internal/ingest"
	"github.com/hazadus/go-playlist/internal/utils"
)

// createCheckCommand создает команду check с привязкой к экземпляру приложения
func (app *Application) createCheckCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "check [source]",
		Short: "Validate a CSV source without building a playlist",
		Long:  `Parse a CSV source (file, http(s):// or s3://) and print accepted and rejected rows.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			source := app.Config.ImportSource
			if len(args) == 1 {
				source = args[0]
			}
			return app.checkSource(ctx, source)
		},
	}
}

func (app *Application) checkSource(ctx context.Context, source string) error {
	var accepted []data.Track
	report, err := app.Opener.LoadSource(ctx, source, func(t data.Track) {
		accepted = append(accepted, t)
	})
	if report == nil {
		return err
	}

	if len(accepted) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(app.out)
		t.SetStyle(table.StyleLight)
		t.SetTitle("✅ Принятые строки")
		t.AppendHeader(table.Row{"#", "Название", "Исполнитель", "Настроение"})
		t.AppendRows(lo.Map(accepted, func(tr data.Track, i int) table.Row {
			return table.Row{i + 1, utils.TruncateString(tr.Title, 40), utils.TruncateString(tr.Artist, 30), utils.TruncateString(tr.Mood, 20)}
		}))
		t.Render()
	}

	if len(report.Rejected) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(app.out)
		t.SetStyle(table.StyleLight)
		t.SetTitle("⚠️  Отклоненные строки")
		t.AppendHeader(table.Row{"Строка", "Содержимое", "Причина"})
		t.AppendRows(lo.Map(report.Rejected, func(r ingest.Rejection, _ int) table.Row {
			return table.Row{r.Line, utils.TruncateString(r.Raw, 40), text.FgHiRed.Sprint(r.Err)}
		}))
		t.Render()
	}

	fmt.Fprintf(app.out, "📊 Принято: %d, отклонено: %d\n", report.Added, len(report.Rejected))
	return err
}
