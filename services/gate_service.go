package services

import (
	"errors"
	"time"

	"github.com/aisyahz/tepico88/utils"
)

var ErrWrongPassword = errors.New("incorrect password")

// GateService is the staff access gate: one shared secret, no per-user
// identity, no lockout or backoff. On match it issues the token the client
// persists to skip re-entry. This is access obfuscation, kept deliberately
// weak — it must not grow into a real authorization system.
type GateService struct {
	password  string
	jwtSecret string
	jwtTTL    time.Duration
}

func NewGateService(password, secret string, ttl time.Duration) *GateService {
	return &GateService{password: password, jwtSecret: secret, jwtTTL: ttl}
}

// Login compares the input against the shared secret in plain text.
func (s *GateService) Login(password string) (string, error) {
	if password != s.password {
		return "", ErrWrongPassword
	}
	return utils.GenerateToken("staff", s.jwtSecret, s.jwtTTL)
}
