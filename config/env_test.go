package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvironment(t *testing.T) {
	t.Run("defaults to development", func(t *testing.T) {
		t.Setenv("ENV", "")
		assert.Equal(t, Development, GetEnvironment())
		assert.True(t, IsDevelopment())
	})

	t.Run("production", func(t *testing.T) {
		t.Setenv("ENV", "production")
		assert.Equal(t, Production, GetEnvironment())
		assert.False(t, IsDevelopment())
	})

	t.Run("unknown values fall back to development", func(t *testing.T) {
		t.Setenv("ENV", "staging")
		assert.Equal(t, Development, GetEnvironment())
	})
}
