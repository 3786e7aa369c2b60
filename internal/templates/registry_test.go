package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDs(t *testing.T) {
	assert.Equal(t, []string{
		"flask-datta-able",
		"django-datta-able",
		"django-volt-dashboard",
		"flask-volt-dashboard",
	}, IDs())
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"flask-datta-able", true},
		{"django-volt-dashboard", true},
		{"argon-rust", false},
		{"", false},
		{"FLASK-DATTA-ABLE", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.id))
		})
	}
}

func TestGet(t *testing.T) {
	tmpl, err := Get("django-datta-able")
	require.NoError(t, err)
	assert.Equal(t, FamilyDjango, tmpl.Family)
	assert.Equal(t, "datta-able", tmpl.UIKit)

	_, err = Get("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid templates: flask-datta-able")
}

func TestDefault(t *testing.T) {
	d := Default()
	assert.Equal(t, "flask-datta-able", d.ID)
	assert.True(t, d.Default)
	assert.True(t, IsValid(d.ID), "default template must be in the allow-list")
}

func TestList_ReturnsCopy(t *testing.T) {
	list := List()
	list[0].ID = "mutated"
	assert.Equal(t, "flask-datta-able", List()[0].ID)
}

func TestByFamily(t *testing.T) {
	groups := ByFamily()
	require.Len(t, groups[FamilyFlask], 2)
	require.Len(t, groups[FamilyDjango], 2)
	assert.Equal(t, "flask-datta-able", groups[FamilyFlask][0].ID)
	assert.Equal(t, "flask-volt-dashboard", groups[FamilyFlask][1].ID)

	for _, f := range Families() {
		assert.NotEmpty(t, groups[f])
	}
}

func TestRepositoryURL(t *testing.T) {
	assert.Equal(t, "https://github.com/app-generator/flask-datta-able.git",
		RepositoryURL("", "", "flask-datta-able"))
	assert.Equal(t, "https://gitlab.example.com/acme/django-volt-dashboard.git",
		RepositoryURL("gitlab.example.com", "acme", "django-volt-dashboard"))
}

func TestFamilyDisplayName(t *testing.T) {
	assert.Equal(t, "Flask", FamilyFlask.DisplayName())
	assert.Equal(t, "Django", FamilyDjango.DisplayName())
	assert.Equal(t, "rails", Family("rails").DisplayName())
}
