package info

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"tableflip.dev/workjournal/pkg/calendar"
	"tableflip.dev/workjournal/pkg/config"
	"tableflip.dev/workjournal/pkg/paths"
	"tableflip.dev/workjournal/pkg/printers"
	"tableflip.dev/workjournal/pkg/store"
	"tableflip.dev/workjournal/pkg/templates"
)

const layoutISO = "2006-01-02"

// Info prints where things are stored and what today's entry will use.
type Info struct {
	Resolver    *paths.Resolver
	Config      *config.Store
	Persistence store.Persistence
	Today       time.Time
	Printer     *printers.PrettyPrint
}

func (n *Info) Do(ctx context.Context) error {
	if n.Resolver == nil {
		return errors.New("can not show info, no path resolver")
	}
	if n.Persistence == nil {
		return errors.New("can not show info, no persistence")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	today := n.Today
	if today.IsZero() {
		today = time.Now()
	}
	today = calendar.Normalize(today)

	project, err := n.Resolver.ResolveScope(false)
	if err != nil {
		return err
	}
	user, err := n.Resolver.ResolveScope(true)
	if err != nil {
		return err
	}

	pp.Title("Scopes")
	pp.Pairs([][2]string{
		{"project root", project.Root},
		{"project templates", describe(project.Templates)},
		{"project config", describe(project.ConfigFile)},
		{"user dir", user.Root},
		{"user templates", describe(user.Templates)},
		{"user config", describe(user.ConfigFile)},
	})

	pp.Title("Template search order")
	projectTemplates, err := n.Resolver.ProjectTemplatesDir()
	if err != nil {
		return err
	}
	loader := templates.SearchLoader(projectTemplates, user.Templates)
	for i, src := range loader.Sources {
		pp.Faint("  %d. %s", i+1, src)
	}
	pp.NewLine()

	cutoff := calendar.DefaultCutoffDay
	if n.Config != nil {
		cutoff, err = n.Config.Int(config.HolidayCutoffDay, calendar.DefaultCutoffDay)
		if err != nil {
			return err
		}
	}
	tier := calendar.SelectTier(today, cutoff)

	pp.Title("Today")
	pp.Pairs([][2]string{
		{"date", today.Format(layoutISO)},
		{"tier", tier.String()},
		{"template", tier.TemplateName()},
		{config.HolidayCutoffDay, fmt.Sprint(cutoff)},
		{"entry", describe(n.Persistence.Path(today))},
	})

	pp.Title("Journal")
	dates := n.Persistence.Dates(ctx)
	pp.Pairs([][2]string{
		{"path", n.Persistence.BasePath()},
		{"entries", fmt.Sprint(len(dates))},
	})
	pp.Month(today, today, dates)
	return nil
}

func describe(path string) string {
	if _, err := os.Stat(path); err != nil {
		return path + " (missing)"
	}
	return path
}
