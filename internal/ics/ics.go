// Package ics renders a calendar file for a confirmed booking so the chat
// layer can hand the user something their agenda understands.
package ics

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Event struct {
	Summary     string
	Description string
	Date        string // 2006-01-02
	StartTime   string // HH:MM
	EndTime     string // HH:MM
	UID         string // optional; derived from the timestamps when empty
}

const stampLayout = "20060102T150405"

// Render produces the VCALENDAR document for one event. Times are written
// as floating local times, matching how the site displays them.
func Render(e Event, now time.Time) (string, error) {
	start, err := time.Parse("2006-01-02 15:04", e.Date+" "+e.StartTime)
	if err != nil {
		return "", fmt.Errorf("ics: bad start: %w", err)
	}
	end, err := time.Parse("2006-01-02 15:04", e.Date+" "+e.EndTime)
	if err != nil {
		return "", fmt.Errorf("ics: bad end: %w", err)
	}

	stamp := now.UTC().Format(stampLayout) + "Z"
	uid := e.UID
	if uid == "" {
		uid = stamp + "@baan-scheduler"
	}

	var b strings.Builder
	for _, line := range []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//baan-scheduler//NONSGML v1.0//EN",
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + stamp,
		"DTSTART:" + start.Format(stampLayout),
		"DTEND:" + end.Format(stampLayout),
		"SUMMARY:" + e.Summary,
		"DESCRIPTION:" + e.Description,
		"END:VEVENT",
		"END:VCALENDAR",
	} {
		b.WriteString(line)
		b.WriteString("\r\n")
	}
	return b.String(), nil
}

// WriteFile renders the event into dir and returns the file path.
func WriteFile(dir string, e Event, now time.Time) (string, error) {
	doc, err := Render(e, now)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("reservation_%s.ics", now.UTC().Format(stampLayout)))
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
