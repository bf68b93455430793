package credentials

import (
	"math/rand/v2"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	otpMin = 100000
	otpMax = 999999
)

// Service bundles the pure credential primitives the workflows need:
// one-way password hashing, OTP generation and the clock. The random
// source and clock are injectable so tests can pin exact values.
type Service interface {
	HashPassword(plain string) (string, error)
	VerifyPassword(plain, hash string) bool
	GenerateOTP() int
	Now() time.Time
}

type service struct {
	rng *rand.Rand
	now func() time.Time
}

type Option func(*service)

func WithRand(rng *rand.Rand) Option {
	return func(s *service) { s.rng = rng }
}

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func New(opts ...Option) Service {
	s := &service{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (s *service) VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// GenerateOTP returns a six digit code in [100000, 999999].
func (s *service) GenerateOTP() int {
	return otpMin + s.rng.IntN(otpMax-otpMin+1)
}

func (s *service) Now() time.Time {
	return s.now()
}
