package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsComplete(t *testing.T) {
	assert.False(t, Options{}.Complete())
	assert.False(t, Options{Template: "flask-datta-able"}.Complete())
	assert.False(t, Options{FolderName: "proj"}.Complete())
	assert.True(t, Options{Template: "flask-datta-able", FolderName: "proj"}.Complete())
}

func TestOptionsMerge(t *testing.T) {
	answers := Options{Template: "django-datta-able", FolderName: "answered", UseDocker: true}

	t.Run("supplied values win", func(t *testing.T) {
		got := Options{Template: "flask-datta-able", FolderName: "proj"}.Merge(answers)
		assert.Equal(t, Options{Template: "flask-datta-able", FolderName: "proj"}, got)
	})

	t.Run("empty fields are filled", func(t *testing.T) {
		got := Options{}.Merge(answers)
		assert.Equal(t, "django-datta-able", got.Template)
		assert.Equal(t, "answered", got.FolderName)
		assert.False(t, got.UseDocker, "docker is never taken from answers")
	})
}

func TestValidateFolderName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr string
	}{
		{name: "simple", in: "my-project"},
		{name: "dots inside", in: "site.v2"},
		{name: "empty", in: "", wantErr: "must not be empty"},
		{name: "blank", in: "   ", wantErr: "must not be empty"},
		{name: "padded", in: " proj", wantErr: "whitespace"},
		{name: "dot", in: ".", wantErr: "not allowed"},
		{name: "dotdot", in: "..", wantErr: "not allowed"},
		{name: "slash", in: "a/b", wantErr: "path separators"},
		{name: "backslash", in: `a\b`, wantErr: "path separators"},
		{name: "reserved", in: "a:b", wantErr: "invalid characters"},
		{name: "dash inside", in: "my-project-"},
		{name: "short option", in: "-x", wantErr: "must not start with '-'"},
		{name: "long option", in: "--bare", wantErr: "must not start with '-'"},
		{name: "option with value", in: "--depth=1", wantErr: "must not start with '-'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFolderName(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
