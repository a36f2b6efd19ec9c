package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agrirent/pkg/apperror"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RevocationStore tracks revoked token IDs until their natural expiry.
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type redisRevocationStore struct {
	rdb *redis.Client
}

// NewRedisRevocationStore tolerates a nil client the way the rest of the
// app tolerates missing redis: revocation becomes a no-op.
func NewRedisRevocationStore(rdb *redis.Client) RevocationStore {
	return &redisRevocationStore{rdb: rdb}
}

func (s *redisRevocationStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if s.rdb == nil || ttl <= 0 {
		return nil
	}
	key := fmt.Sprintf("revoked_token:%s", jti)
	return s.rdb.Set(ctx, key, "revoked", ttl).Err()
}

func (s *redisRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if s.rdb == nil {
		return false, nil
	}
	key := fmt.Sprintf("revoked_token:%s", jti)
	n, err := s.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// TokenClaims is the verified identity carried by a bearer token.
type TokenClaims struct {
	UserID    uuid.UUID
	JTI       string
	ExpiresAt time.Time
}

type TokenService struct {
	secret      []byte
	ttl         time.Duration
	revocations RevocationStore
}

func NewTokenService(secret string, ttl time.Duration, revocations RevocationStore) *TokenService {
	return &TokenService{
		secret:      []byte(secret),
		ttl:         ttl,
		revocations: revocations,
	}
}

// Issue signs an HS256 token bound to the user id, with a unique jti so
// individual tokens can be revoked.
func (s *TokenService) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies signature, expiry and revocation, returning the claims.
func (s *TokenService) Parse(ctx context.Context, tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperror.ErrUnauthorized
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.ExpiresAt == nil {
		return nil, apperror.ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}

	revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, apperror.ErrUnauthorized
	}

	return &TokenClaims{
		UserID:    userID,
		JTI:       claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Revoke invalidates exactly one token, identified by jti, until its
// own expiry. Other tokens for the same user stay live.
func (s *TokenService) Revoke(ctx context.Context, claims *TokenClaims) error {
	if claims == nil {
		return errors.New("missing token claims")
	}
	return s.revocations.Revoke(ctx, claims.JTI, time.Until(claims.ExpiresAt))
}
