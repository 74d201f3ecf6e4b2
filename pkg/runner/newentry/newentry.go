// Package newentry creates the journal entry for a day from the template
// its calendar tier calls for.
package newentry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"tableflip.dev/workjournal/pkg/calendar"
	"tableflip.dev/workjournal/pkg/config"
	"tableflip.dev/workjournal/pkg/editor"
	"tableflip.dev/workjournal/pkg/printers"
	"tableflip.dev/workjournal/pkg/store"
	"tableflip.dev/workjournal/pkg/templates"
)

const layoutISO = "2006-01-02"

type NewEntry struct {
	Date  time.Time
	Open  bool
	Force bool
	// Tier overrides the calendar rules when set.
	Tier *calendar.Tier

	Journal   store.Persistence
	Templates *templates.Loader
	// Config supplies the holiday cutoff day; nil uses the default.
	Config  *config.Store
	Editor  editor.Launcher
	Logger  *log.Logger
	Printer *printers.PrettyPrint
}

// Do writes the entry unless it already exists, then optionally opens it.
// The entry path is returned whenever no error occurred.
func (n *NewEntry) Do(ctx context.Context) (string, error) {
	if n.Journal == nil {
		return "", errors.New("can not create entry, no persistence")
	}
	if n.Templates == nil {
		return "", errors.New("can not create entry, no template loader")
	}
	logger := n.Logger
	if logger == nil {
		logger = log.Default()
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	day := calendar.Normalize(n.Date)
	path := n.Journal.Path(day)

	tier, err := n.tier(day)
	if err != nil {
		return "", err
	}
	logger.Debug("selected template", "date", day.Format(layoutISO), "tier", tier, "template", tier.TemplateName())

	exists := n.Journal.Has(day)
	if !exists || n.Force {
		verb := "creating"
		if exists {
			verb = "overwriting"
		}
		text, err := n.Templates.Load(tier.TemplateName())
		if err != nil {
			return "", fmt.Errorf("%s journal file: %w", verb, err)
		}
		rendered := templates.Render(templates.StripMarker(text), Placeholders(day))
		if err := n.Journal.Write(day, rendered); err != nil {
			return "", fmt.Errorf("%s journal file: %w", verb, err)
		}
		if exists {
			pp.Status(printers.StatusOverwrote, path)
		} else {
			pp.Status(printers.StatusCreated, path)
		}
	} else {
		pp.Status(printers.StatusExists, path)
	}

	content, err := n.Journal.Read(day)
	if err != nil {
		return "", err
	}
	if templates.HasUnreplaced(content) {
		logger.Warn("journal entry contains unreplaced placeholders",
			"path", path, "placeholders", strings.Join(templates.Unreplaced(content), " "))
	}

	if n.Open {
		n.open(path, logger, pp)
	}
	return path, nil
}

func (n *NewEntry) tier(day time.Time) (calendar.Tier, error) {
	if n.Tier != nil {
		return *n.Tier, nil
	}
	cutoff := calendar.DefaultCutoffDay
	if n.Config != nil {
		var err error
		cutoff, err = n.Config.Int(config.HolidayCutoffDay, calendar.DefaultCutoffDay)
		if err != nil {
			return calendar.Daily, err
		}
	}
	return calendar.SelectTier(day, cutoff), nil
}

func (n *NewEntry) open(path string, logger *log.Logger, pp *printers.PrettyPrint) {
	launcher := n.Editor
	if launcher == nil {
		launcher = &editor.ExecLauncher{}
	}
	name, err := launcher.Launch(path)
	if err != nil {
		logger.Error("error opening file", "path", path, "err", err)
		return
	}
	pp.Faint("Opening %s with %s", path, name)
}

// Placeholders are the template values for day.
func Placeholders(day time.Time) map[string]any {
	return map[string]any{
		"date":    FormatDate(day),
		"week":    calendar.ISOWeek(day),
		"year":    day.Format("2006"),
		"month":   day.Month().String(),
		"quarter": calendar.Quarter(day),
		"day":     day.Format("02"),
		"iso":     day.Format(layoutISO),
	}
}

// FormatDate renders day like "Friday, March 28th 2025".
func FormatDate(day time.Time) string {
	return fmt.Sprintf("%s, %s %s %d", day.Weekday(), day.Month(), humanize.Ordinal(day.Day()), day.Year())
}
