package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
)

// getSimpleText is an indirection used to facilitate testing.
var getSimpleText = GetSimpleText

const shortIDLen = 8

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

func formatApplication(a models.JobApplication) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s  %-11s  %s @ %s", shortID(a.ID), "["+string(a.Status)+"]", a.Title, a.Company)
	if a.Location != "" {
		fmt.Fprintf(&b, " (%s)", a.Location)
	}
	fmt.Fprintf(&b, "  %s", a.CreatedAt.Format("2006-01-02"))
	return b.String()
}

// AddApplication prompts for a new job application and saves it.
// Location, link, notes and status are optional.
func (a *App) AddApplication(ctx context.Context) error {
	var app models.JobApplication
	var err error

	if app.Title, err = getRequiredText(a.reader, "Enter job title", a.out); err != nil {
		return err
	}
	if app.Company, err = getRequiredText(a.reader, "Enter company", a.out); err != nil {
		return err
	}
	if app.Location, err = getSimpleText(a.reader, "Enter location (optional)", a.out); err != nil {
		return err
	}
	if app.JobLink, err = getSimpleText(a.reader, "Enter job link (optional)", a.out); err != nil {
		return err
	}
	if app.Notes, err = getSimpleText(a.reader, "Enter notes (optional)", a.out); err != nil {
		return err
	}

	status, err := getSimpleText(a.reader, "Enter status [Saved|Applied|Interview|Offer|Rejected] (default Saved)", a.out)
	if err != nil {
		return err
	}
	if status != "" {
		if app.Status, err = models.ParseApplicationStatus(status); err != nil {
			return err
		}
	}

	saved, err := a.apps.Add(ctx, app)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %s\n", formatApplication(*saved))
	return nil
}

// ListApplications prints the user's applications, newest first. An
// optional argument narrows the list to one status.
func (a *App) ListApplications(ctx context.Context, args []string) error {
	var filter models.ApplicationFilter
	if len(args) > 0 {
		st, err := models.ParseApplicationStatus(args[0])
		if err != nil {
			return err
		}
		filter.Status = st
	}

	apps, err := a.apps.List(ctx, filter)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		fmt.Fprintln(a.out, "No applications")
		return nil
	}
	for _, app := range apps {
		fmt.Fprintln(a.out, formatApplication(app))
	}
	return nil
}

// SetApplicationStatus moves an application to another status.
func (a *App) SetApplicationStatus(ctx context.Context) error {
	id, err := getRequiredText(a.reader, "Enter application id", a.out)
	if err != nil {
		return err
	}
	raw, err := getRequiredText(a.reader, "Enter new status [Saved|Applied|Interview|Offer|Rejected]", a.out)
	if err != nil {
		return err
	}
	st, err := models.ParseApplicationStatus(raw)
	if err != nil {
		return err
	}

	app, err := a.apps.SetStatus(ctx, id, st)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated %s\n", formatApplication(*app))
	return nil
}

// DeleteApplication removes an application by id or unique id prefix.
func (a *App) DeleteApplication(ctx context.Context) error {
	id, err := getRequiredText(a.reader, "Enter application id to delete", a.out)
	if err != nil {
		return err
	}
	if err := a.apps.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}
