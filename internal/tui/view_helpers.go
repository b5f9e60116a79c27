package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-farm-twin/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

func formatTimestamp(unix int64) string {
	if unix <= 0 {
		return "-"
	}
	return time.Unix(unix, 0).UTC().Format("2006-01-02 15:04")
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// describeEvent renders one line of the event feed.
func describeEvent(e models.Event) string {
	line := fmt.Sprintf("#%d %s entity=%d", e.Seq, e.Name, e.EntityID)
	if e.Key != "" {
		line += fmt.Sprintf(" key=%s value=%d", e.Key, e.Value)
	}
	return line
}
