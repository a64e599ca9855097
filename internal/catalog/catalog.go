package catalog

import (
	"strings"

	"github.com/couplewheel/couplewheel/internal/models"
)

// CatalogError is a custom error type for catalog-related errors
type CatalogError string

// Error implements the error interface
func (e CatalogError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrBlankText       CatalogError = "activity text cannot be blank"
	ErrInvalidDuration CatalogError = "activity duration must be positive"
	ErrUnknownRole     CatalogError = "unknown role"
)

// Custom activity submissions carry text and duration only; points and type
// are filled in from this policy.
const (
	DefaultCustomPoints = 50
)

// DefaultCustomType is applied when a custom activity omits its type
const DefaultCustomType = models.ActivityTypeDare

// Catalog holds the two per-role ordered activity sequences. There is no
// removal or edit operation; catalogs grow only by append.
type Catalog struct {
	master []models.Activity
	sub    []models.Activity
}

// New creates a catalog from existing per-role sequences, typically a
// restored snapshot. Nil slices fall back to the default seeds so the
// catalogs are never empty at spin time.
func New(master, sub []models.Activity) *Catalog {
	if master == nil {
		master = DefaultMasterActivities()
	}
	if sub == nil {
		sub = DefaultSubActivities()
	}

	return &Catalog{
		master: master,
		sub:    sub,
	}
}

// NewWithDefaults creates a catalog seeded with the default activity lists
func NewWithDefaults() *Catalog {
	return New(nil, nil)
}

// ListFor returns a copy of the ordered activity sequence for a role
func (c *Catalog) ListFor(role models.Role) []models.Activity {
	var source []models.Activity
	switch role {
	case models.RoleMaster:
		source = c.master
	case models.RoleSub:
		source = c.sub
	default:
		return nil
	}

	out := make([]models.Activity, len(source))
	copy(out, source)
	return out
}

// Len returns the number of activities for a role
func (c *Catalog) Len(role models.Role) int {
	switch role {
	case models.RoleMaster:
		return len(c.master)
	case models.RoleSub:
		return len(c.sub)
	default:
		return 0
	}
}

// Append validates and adds an activity to a role's catalog, applying the
// custom activity defaults for omitted points and type. It returns the
// normalized activity that was stored. There is no de-duplication.
func (c *Catalog) Append(role models.Role, activity models.Activity) (models.Activity, error) {
	if !role.IsValid() {
		return models.Activity{}, ErrUnknownRole
	}

	if strings.TrimSpace(activity.Text) == "" {
		return models.Activity{}, ErrBlankText
	}

	if activity.Duration <= 0 {
		return models.Activity{}, ErrInvalidDuration
	}

	if activity.Points <= 0 {
		activity.Points = DefaultCustomPoints
	}

	if activity.Type == "" {
		activity.Type = DefaultCustomType
	}

	if role == models.RoleMaster {
		c.master = append(c.master, activity)
	} else {
		c.sub = append(c.sub, activity)
	}

	return activity, nil
}
