package client

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jaychenthinkfast/OneTabCloud/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

// maxTitleWidth bounds tab titles in list output.
const maxTitleWidth = 60

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	indexStyle = lipgloss.NewStyle().Width(4).Align(lipgloss.Right)
)

func renderPage(title, data string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(uiDivider))
	b.WriteString("\n")

	if strings.TrimSpace(data) == "" {
		b.WriteString("  -\n")
		return b.String()
	}

	for _, line := range strings.Split(strings.TrimRight(data, "\n"), "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// renderGroupList renders one block per group: header, then at most
// preview tabs.
func renderGroupList(views []models.GroupView, preview int) string {
	if len(views) == 0 {
		return helpStyle.Render("no saved groups") + "\n"
	}

	var b strings.Builder
	for i, v := range views {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderGroupHeader(v))
		if v.DecodeErr != nil {
			continue
		}

		for j, tab := range v.Entries {
			if j == preview {
				b.WriteString(helpStyle.Render(fmt.Sprintf("  ... %d more", len(v.Entries)-preview)))
				b.WriteString("\n")
				break
			}
			b.WriteString(renderTab(j, tab))
		}
	}
	return b.String()
}

func renderGroupHeader(v models.GroupView) string {
	name := v.Name
	if name == "" {
		name = "(unnamed)"
	}

	var tabs string
	if v.DecodeErr != nil {
		tabs = errorStyle.Render("unreadable: " + v.DecodeErr.Error())
	} else {
		tabs = fmt.Sprintf("%d tabs", len(v.Entries))
	}

	return fmt.Sprintf("%s  %s  %s\n  %s\n",
		titleStyle.Render(name),
		tabs,
		helpStyle.Render(v.LastModified),
		helpStyle.Render("id "+v.ID),
	)
}

func renderTab(index int, tab models.TabEntry) string {
	title := tab.Title
	if title == "" {
		title = tab.URL
	}
	return fmt.Sprintf("%s  %s\n      %s\n",
		indexStyle.Render(fmt.Sprintf("%d.", index)),
		fitText(title, maxTitleWidth),
		helpStyle.Render(tab.URL),
	)
}

func renderGroup(v models.GroupView) string {
	if v.DecodeErr != nil {
		return renderPage(valueOrNA(v.Name), errorStyle.Render("unreadable: "+v.DecodeErr.Error()))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "id:            %s\n", v.ID)
	fmt.Fprintf(&b, "last modified: %s\n", v.LastModified)
	fmt.Fprintf(&b, "tabs:          %d\n\n", len(v.Entries))
	for i, tab := range v.Entries {
		b.WriteString(renderTab(i, tab))
	}
	return renderPage(valueOrNA(v.Name), b.String())
}

func renderStats(s models.GroupStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "groups:     %d\n", s.Groups)
	fmt.Fprintf(&b, "tombstones: %d\n", s.Tombstones)
	fmt.Fprintf(&b, "tabs:       %d\n", s.Tabs)
	fmt.Fprintf(&b, "size:       %s\n", formatBytes(s.SizeBytes))
	fmt.Fprintf(&b, "last sync:  %s\n", valueOrNA(s.LastSync))
	return renderPage("STATS", b.String())
}

func renderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder
	b.WriteString("version: " + valueOrNA(info.BuildVersion()) + "\n")
	b.WriteString("date:    " + valueOrNA(info.BuildDate()) + "\n")
	b.WriteString("commit:  " + valueOrNA(info.BuildCommit()) + "\n")
	return renderPage("OneTabCloud", b.String())
}

func renderOutcome(o models.SyncOutcome) string {
	switch o.Status {
	case models.SyncSucceeded:
		return fmt.Sprintf("synced %d groups at %s", o.MergedCount, o.LastSync)
	case models.SyncSkipped:
		return "sync skipped: " + o.Reason
	default:
		return errorStyle.Render(fmt.Sprintf("sync failed: %v", o.Err))
	}
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func formatBytes(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := unit, 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGT"[exp])
}
