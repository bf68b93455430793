package nik_test

import (
	"testing"

	"go-hrportal/internal/shared/nik"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	t.Run("empty last starts at base", func(t *testing.T) {
		got, err := nik.Next("")
		assert.NoError(t, err)
		assert.Equal(t, "EMP-000001", got)
	})

	t.Run("increments and keeps padding", func(t *testing.T) {
		got, err := nik.Next("EMP-000041")
		assert.NoError(t, err)
		assert.Equal(t, "EMP-000042", got)
	})

	t.Run("malformed suffix is rejected", func(t *testing.T) {
		_, err := nik.Next("EMP-abc")
		assert.Error(t, err)
	})

	t.Run("sequence is strictly increasing", func(t *testing.T) {
		last := "EMP-000100"
		seen := map[string]bool{}
		for i := 0; i < 50; i++ {
			next, err := nik.Next(last)
			assert.NoError(t, err)
			assert.Greater(t, next, last)
			assert.False(t, seen[next])
			seen[next] = true
			last = next
		}
	})
}
