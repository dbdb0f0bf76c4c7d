package ui

import (
	"fmt"
	"strings"

	"github.com/okrete/kinema/internal/util"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	avail := m.avail
	if avail == 0 {
		avail = usableWidth(m.width)
	}

	header := headerStyle.Render(m.scene.Title)

	statusIcon := "❚❚"
	statusText := "scrub"
	if m.playing {
		statusIcon = "▶"
		statusText = "autoplay"
	}
	status := fmt.Sprintf("%s  %s", statusIcon, statusText)
	if stop := m.scene.Stops.Current(); stop != nil {
		status += fmt.Sprintf("  ◆ %s", stop.Name)
	}
	statusLine := statusStyle.Render(status) + "  " + timeStyle.Render(util.FormatDuration(m.elapsed))

	lines := "\n"
	lines += "  " + header + "\n"
	lines += "\n"
	lines += "  " + statusLine + "\n"
	lines += "\n"

	for _, ev := range m.snapshot {
		for _, l := range strings.Split(renderElement(ev, avail), "\n") {
			lines += "  " + l + "\n"
		}
		lines += "\n"
	}

	lines += "  " + m.bar.ViewAs(m.pos) + "  " + timeStyle.Render(util.FormatPercent(m.pos)) + "\n"
	lines += "\n"
	lines += "  " + helpStyle.Render(helpText()) + "\n"

	return lines
}
