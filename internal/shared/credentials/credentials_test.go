package credentials_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"go-hrportal/internal/shared/credentials"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerifyPassword(t *testing.T) {
	svc := credentials.New()

	hash, err := svc.HashPassword("s3cret!")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.True(t, svc.VerifyPassword("s3cret!", hash))
	assert.False(t, svc.VerifyPassword("wrong", hash))
}

func TestGenerateOTP(t *testing.T) {
	t.Run("stays inside six digit range", func(t *testing.T) {
		svc := credentials.New()
		for i := 0; i < 1000; i++ {
			otp := svc.GenerateOTP()
			assert.GreaterOrEqual(t, otp, 100000)
			assert.LessOrEqual(t, otp, 999999)
		}
	})

	t.Run("seeded source is deterministic", func(t *testing.T) {
		a := credentials.New(credentials.WithRand(rand.New(rand.NewPCG(1, 2))))
		b := credentials.New(credentials.WithRand(rand.New(rand.NewPCG(1, 2))))
		for i := 0; i < 10; i++ {
			assert.Equal(t, a.GenerateOTP(), b.GenerateOTP())
		}
	})
}

func TestClockInjection(t *testing.T) {
	frozen := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := credentials.New(credentials.WithClock(func() time.Time { return frozen }))
	assert.Equal(t, frozen, svc.Now())
}
