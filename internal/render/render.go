// Package render turns normalized API data into the CLI's terminal output:
// latest-sample lines, the event timeline, and device listings. All
// functions return strings so commands stay trivial to test.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/dklimov/pointctl/internal/models"
	"github.com/dklimov/pointctl/internal/point"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// timestampLayout is the display format for all timestamps: HH:MM DD/MM/YYYY.
const timestampLayout = "15:04 02/01/2006"

// FormatTime formats a timestamp for display.
func FormatTime(t time.Time) string {
	return t.Format(timestampLayout)
}

// SensorValue formats a sample value. Temperature is rounded to two decimal
// places; every other sensor shows the raw value.
func SensorValue(sensor point.Sensor, value float64) string {
	if sensor == point.SensorTemperature {
		return strconv.FormatFloat(value, 'f', 2, 64)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// LatestSample renders one "most recent value" line, e.g.
//
//	Temperature: 19.80 (14:05 21/03/2026)
func LatestSample(label string, sensor point.Sensor, sample models.SensorSample) string {
	return fmt.Sprintf("%s: %s (%s)",
		headerStyle.Render(label),
		SensorValue(sensor, sample.Value),
		FormatTime(sample.Timestamp))
}

// PrettyEventType turns an API event type into a readable label: colons
// become spaces and each word is title-cased, so "door:opened:remotely"
// renders as "Door Opened Remotely".
func PrettyEventType(eventType string) string {
	words := strings.Split(strings.ReplaceAll(eventType, ":", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// Timeline renders the newest-first event list framed by "Present" and
// "Past" markers.
func Timeline(events []models.TimelineEvent) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Present"))
	b.WriteString("\n")
	for _, e := range events {
		b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			dimStyle.Render(FormatTime(e.CreatedAt)),
			nameStyle.Render(e.DeviceLabel),
			PrettyEventType(e.Type)))
	}
	b.WriteString(headerStyle.Render("Past"))
	return b.String()
}

// DeviceList renders the live device listing. Verbose adds connectivity and
// activity state plus the last-seen timestamp; online is the negation of
// the API's offline flag.
func DeviceList(devices []models.DeviceStatus, verbose bool) string {
	var b strings.Builder
	for _, d := range devices {
		b.WriteString(fmt.Sprintf("%s (%s)\n", nameStyle.Render(d.Name), d.ID))
		if verbose {
			b.WriteString(fmt.Sprintf("  online: %t  active: %t  last seen: %s\n",
				!d.Offline, d.Active, FormatTime(d.LastHeardAt)))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FetchSummary renders the device-refresh confirmation: the count of
// discovered devices followed by one line per device.
func FetchSummary(devices []models.DeviceRecord) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Found %d device(s)\n", len(devices)))
	for _, d := range devices {
		b.WriteString(fmt.Sprintf("  %s\n", nameStyle.Render(d.Name)))
	}
	return strings.TrimRight(b.String(), "\n")
}
