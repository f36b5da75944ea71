package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// LoginChecker resolves session tokens against redis. It implements the
// middleware and handler side of sessions, while Service owns their lifecycle.
type LoginChecker struct {
	sessionTTL  time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(sessionTTL time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		sessionTTL:  sessionTTL,
		redisClient: redisClient,
	}
}

func (c *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	_, err := c.UserIDByToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// UserIDByToken returns the account bound to a session token, or ErrNoSession
// when the token is unknown or the session has expired.
func (c *LoginChecker) UserIDByToken(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, ErrNoSession
	}

	sessionVal, err := c.redisClient.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNoSession
		}
		return 0, fmt.Errorf("get session: %w", err)
	}

	userID, createdAt, err := parseSession(sessionVal)
	if err != nil {
		return 0, err
	}
	if time.Since(createdAt) > c.sessionTTL {
		return 0, ErrNoSession
	}

	return userID, nil
}
