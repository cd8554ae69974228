package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// ApplicationStatus is where a job application stands in the hiring funnel.
type ApplicationStatus string

const (
	StatusSaved     ApplicationStatus = "Saved"
	StatusApplied   ApplicationStatus = "Applied"
	StatusInterview ApplicationStatus = "Interview"
	StatusOffer     ApplicationStatus = "Offer"
	StatusRejected  ApplicationStatus = "Rejected"
)

var (
	ErrUnknownStatus      = errors.New("unknown application status")
	ErrInvalidApplication = errors.New("invalid application")
)

// ApplicationStatuses lists every status in funnel order.
func ApplicationStatuses() []ApplicationStatus {
	return []ApplicationStatus{StatusSaved, StatusApplied, StatusInterview, StatusOffer, StatusRejected}
}

// ParseApplicationStatus matches s against the known statuses ignoring case.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	for _, st := range ApplicationStatuses() {
		if strings.EqualFold(string(st), strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// JobApplication is one tracked application owned by a user.
type JobApplication struct {
	ID        string            `json:"id"`
	UserID    string            `json:"userId"`
	Title     string            `json:"title"`
	Company   string            `json:"company"`
	Location  string            `json:"location,omitempty"`
	JobLink   string            `json:"jobLink,omitempty"`
	Notes     string            `json:"notes,omitempty"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

const (
	minFieldLen = 2
	maxFieldLen = 100
)

// Validate checks the user-supplied fields. Title and company are required
// and must be 2 to 100 characters long.
func (a *JobApplication) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"title", a.Title},
		{"company", a.Company},
	} {
		n := utf8.RuneCountInString(strings.TrimSpace(f.value))
		if n < minFieldLen || n > maxFieldLen {
			return fmt.Errorf("%w: %s must be between %d and %d characters", ErrInvalidApplication, f.name, minFieldLen, maxFieldLen)
		}
	}
	if a.Status != "" && !slices.Contains(ApplicationStatuses(), a.Status) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidApplication, ErrUnknownStatus, a.Status)
	}
	return nil
}

// ApplicationFilter narrows a list of applications. Zero fields match
// everything; the rest must all match.
type ApplicationFilter struct {
	Status  ApplicationStatus
	Company string
	// Search is matched case-insensitively against title, company, location
	// and notes.
	Search string
	From   time.Time
	To     time.Time
}

// Match reports whether a passes every set criterion. From and To bound
// CreatedAt inclusively.
func (f ApplicationFilter) Match(a JobApplication) bool {
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.Company != "" && !strings.EqualFold(a.Company, f.Company) {
		return false
	}
	if !f.From.IsZero() && a.CreatedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && a.CreatedAt.After(f.To) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		hay := strings.ToLower(strings.Join([]string{a.Title, a.Company, a.Location, a.Notes}, "\n"))
		if !strings.Contains(hay, q) {
			return false
		}
	}
	return true
}
