package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/go-redis/redis/v8"

	"github.com/WaekyTV/fitquest-backend/pkg"
)

const (
	sessionKeyPrefix = "fitquest-session||"
	tokensSetKey     = "fitquest-sessions"

	DefaultTTL = 7 * 24 * time.Hour
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
	ErrNoSession     = errors.New("session not found")
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User is the account slice auth cares about, resolved by the profile store.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

type UserSource interface {
	UserByUsername(ctx context.Context, username string) (User, error)
}

type Service struct {
	users       UserSource
	sessionTTL  time.Duration
	redisClient *redis.Client

	// RandStringFunc is exposed for tests to make tokens deterministic
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(users UserSource, sessionTTL time.Duration, redisClient *redis.Client) *Service {
	return &Service{
		users:          users,
		sessionTTL:     sessionTTL,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (as *Service) Login(ctx context.Context, credentials Credentials, createdAt time.Time) (string, error) {
	user, err := as.users.UserByUsername(ctx, credentials.Username)
	if err != nil {
		return "", err
	}
	if !pkg.CheckPasswordHash(credentials.Password, user.PasswordHash) {
		return "", ErrWrongPassword
	}

	token, err := as.RandStringFunc(35)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	if err := as.redisClient.Set(
		ctx,
		sessionKey(token),
		sessionValue(user.ID, createdAt),
		0,
	).Err(); err != nil {
		return "", fmt.Errorf("set session: %w", err)
	}
	if err := as.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", fmt.Errorf("add session token: %w", err)
	}

	return token, nil
}

func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	removed, err := as.redisClient.Del(ctx, sessionKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, fmt.Errorf("remove session token: %w", err)
	}
	return removed > 0, nil
}

// ScanAndClean walks all known session tokens and removes the expired ones.
// Meant to be called periodically from a background worker.
func (as *Service) ScanAndClean(ctx context.Context) {
	log.Debugln("scanning and cleaning sessions ...")

	tokens, err := as.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("scan and clean sessions, get tokens: %s", err)
		return
	}

	var cleaned int
	for _, token := range tokens {
		sessionVal, err := as.redisClient.Get(ctx, sessionKey(token)).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
					log.Errorf("scan and clean sessions, remove dangling token: %s", err)
				} else {
					cleaned++
				}
				continue
			}
			log.Errorf("scan and clean sessions, get session: %s", err)
			continue
		}

		_, createdAt, err := parseSession(sessionVal)
		if err != nil {
			log.Errorf("scan and clean sessions, parse session: %s", err)
			continue
		}
		if time.Since(createdAt) <= as.sessionTTL {
			continue
		}

		if err := as.redisClient.Del(ctx, sessionKey(token)).Err(); err != nil {
			log.Errorf("scan and clean sessions, delete session: %s", err)
			continue
		}
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("scan and clean sessions, remove token: %s", err)
			continue
		}
		cleaned++
	}

	log.Debugf("sessions scan done, %d cleaned", cleaned)
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func sessionValue(userID int64, createdAt time.Time) string {
	return fmt.Sprintf("%d||%d", userID, createdAt.Unix())
}

func parseSession(value string) (userID int64, createdAt time.Time, err error) {
	parts := strings.Split(value, "||")
	if len(parts) != 2 {
		return 0, time.Time{}, fmt.Errorf("malformed session value [%s]", value)
	}
	userID, err = strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("malformed session user id: %w", err)
	}
	createdAtUnix, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("malformed session timestamp: %w", err)
	}
	return userID, time.Unix(createdAtUnix, 0), nil
}
