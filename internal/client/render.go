package client

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nightlight-app/storysync/models"
)

var (
	reportBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	reportTitleStyle = lipgloss.NewStyle().Bold(true)
	reportLabelStyle = lipgloss.NewStyle().Faint(true)
	reportWarnStyle  = lipgloss.NewStyle().Bold(true)
)

// RenderSyncStats formats one cycle's stats as a bordered terminal report.
func RenderSyncStats(stats models.SyncStats) string {
	var b strings.Builder

	b.WriteString(reportTitleStyle.Render("Sync complete"))
	b.WriteByte('\n')

	writeStat(&b, "Stories updated", stats.StoriesUpdated)
	writeStat(&b, "Stories deleted", stats.StoriesDeleted)
	writeStat(&b, "Assets downloaded", stats.AssetsDownloaded)
	writeStat(&b, "Assets skipped (cached)", stats.AssetsSkipped)
	writeStat(&b, "API calls", stats.APICalls)

	if stats.AssetsFailed > 0 {
		b.WriteString(reportWarnStyle.Render(fmt.Sprintf("%d asset(s) failed, will retry next sync", stats.AssetsFailed)))
		b.WriteByte('\n')
		for _, path := range stats.FailedAssets {
			b.WriteString(reportLabelStyle.Render("  " + path))
			b.WriteByte('\n')
		}
	}

	return reportBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func writeStat(b *strings.Builder, label string, value int) {
	b.WriteString(reportLabelStyle.Render(label + ": "))
	b.WriteString(fmt.Sprintf("%d", value))
	b.WriteByte('\n')
}
