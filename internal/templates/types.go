// Package templates holds the allow-list of project templates appseed can clone.
package templates

// Family identifies the backend web framework a template is built on.
type Family string

const (
	// FamilyFlask marks Flask based templates.
	FamilyFlask Family = "flask"

	// FamilyDjango marks Django based templates.
	FamilyDjango Family = "django"
)

// Template is a pre-built reference project hosted as its own repository.
type Template struct {
	// ID is the template identifier and the repository name.
	ID string

	// Family is the backend framework.
	Family Family

	// UIKit is the frontend kit the template ships with.
	UIKit string

	// Description is a one-line summary shown in listings and the picker.
	Description string

	// Default marks the template preselected by the picker.
	Default bool
}

// DisplayName is the framework name as shown to users.
func (f Family) DisplayName() string {
	switch f {
	case FamilyFlask:
		return "Flask"
	case FamilyDjango:
		return "Django"
	default:
		return string(f)
	}
}
