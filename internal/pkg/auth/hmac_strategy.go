package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/polkiloo/scentshop/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

// HMACStrategy implements auth token creation/verification using HMAC signatures.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueToken generates a signed auth token encoding user id and role.
func (s *HMACStrategy) IssueToken(userID int64, role model.UserRole) (string, error) {
	expires := time.Now().Add(s.ttl).Unix()
	payload := fmt.Sprintf("%d:%s:%d", userID, role, expires)
	sig := s.sign(payload)
	token := fmt.Sprintf("%s:%s", payload, sig)
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken validates the token and returns the encoded user id and role.
func (s *HMACStrategy) ParseToken(token string) (int64, model.UserRole, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, "", ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 4 {
		return 0, "", ErrInvalidToken
	}

	payload := strings.Join(parts[:3], ":")
	expectedSig := s.sign(payload)
	if !hmac.Equal([]byte(expectedSig), []byte(parts[3])) {
		return 0, "", ErrInvalidToken
	}

	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, "", ErrInvalidToken
	}

	role := model.UserRole(parts[1])
	if role != model.RoleAdmin && role != model.RoleCustomer {
		return 0, "", ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return 0, "", ErrInvalidToken
	}

	if time.Unix(expires, 0).Before(time.Now()) {
		return 0, "", ErrInvalidToken
	}

	return userID, role, nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
