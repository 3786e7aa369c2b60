package templates

import (
	"fmt"
	"strings"
)

const (
	// DefaultHost is the git host templates are cloned from.
	DefaultHost = "github.com"

	// DefaultOrg is the organization owning the template repositories.
	DefaultOrg = "app-generator"
)

// registry is the allow-list, in display order.
var registry = []Template{
	{
		ID:          "flask-datta-able",
		Family:      FamilyFlask,
		UIKit:       "datta-able",
		Description: "Flask with the Datta Able dashboard",
		Default:     true,
	},
	{
		ID:          "django-datta-able",
		Family:      FamilyDjango,
		UIKit:       "datta-able",
		Description: "Django with the Datta Able dashboard",
	},
	{
		ID:          "django-volt-dashboard",
		Family:      FamilyDjango,
		UIKit:       "volt-dashboard",
		Description: "Django with the Volt dashboard",
	},
	{
		ID:          "flask-volt-dashboard",
		Family:      FamilyFlask,
		UIKit:       "volt-dashboard",
		Description: "Flask with the Volt dashboard",
	},
}

// Get returns a template by id.
func Get(id string) (Template, error) {
	for _, t := range registry {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("unknown template %q; valid templates: %s", id, strings.Join(IDs(), ", "))
}

// IsValid reports whether id is in the allow-list.
func IsValid(id string) bool {
	_, err := Get(id)
	return err == nil
}

// List returns all templates in display order.
func List() []Template {
	out := make([]Template, len(registry))
	copy(out, registry)
	return out
}

// IDs returns all template ids in display order.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for _, t := range registry {
		ids = append(ids, t.ID)
	}
	return ids
}

// Default returns the template preselected when --template is omitted.
func Default() Template {
	for _, t := range registry {
		if t.Default {
			return t
		}
	}
	return registry[0]
}

// Families returns the known families in display order.
func Families() []Family {
	return []Family{FamilyFlask, FamilyDjango}
}

// ByFamily groups templates by family, preserving display order.
func ByFamily() map[Family][]Template {
	groups := make(map[Family][]Template)
	for _, t := range registry {
		groups[t.Family] = append(groups[t.Family], t)
	}
	return groups
}

// RepositoryURL builds the clone URL https://<host>/<org>/<id>.git.
// Empty host or org fall back to DefaultHost and DefaultOrg.
func RepositoryURL(host, org, id string) string {
	if host == "" {
		host = DefaultHost
	}
	if org == "" {
		org = DefaultOrg
	}
	return fmt.Sprintf("https://%s/%s/%s.git", host, org, id)
}
