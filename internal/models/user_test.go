package models

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileSlug(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{name: "John Doe", prefix: "john-doe-"},
		{name: "  Mary   Ann  ", prefix: "mary-ann-"},
		{name: "O'Brien & Sons!", prefix: "obrien--sons-"},
		{name: "", prefix: "-"},
	}

	suffix := regexp.MustCompile(`^[a-z0-9]{6}$`)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slug := ProfileSlug(tt.name)
			assert.True(t, len(slug) == len(tt.prefix)+6, slug)
			assert.Equal(t, tt.prefix, slug[:len(tt.prefix)])
			assert.Regexp(t, suffix, slug[len(tt.prefix):])
		})
	}
}

func TestNewUserDefaults(t *testing.T) {
	u := NewUser("dad@example.com", "", "hash")

	assert.Equal(t, "dad", u.Name)
	assert.False(t, u.ShowRegistry)
	assert.False(t, u.ShowPaymentLinks)
	assert.Regexp(t, `^dad-[a-z0-9]{6}$`, u.ProfileSlug)
	assert.NotEqual(t, "", u.ID.String())
}
