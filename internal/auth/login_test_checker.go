package auth

import "context"

// LoginTestChecker is a Checker for tests, sessions kept in a plain map.
type LoginTestChecker struct {
	// LoggedSessions maps a session token to the user behind it
	LoggedSessions map[string]int64
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]int64{},
	}
}

func (c *LoginTestChecker) IsLogged(_ context.Context, token string) (bool, error) {
	_, ok := c.LoggedSessions[token]
	return ok, nil
}

func (c *LoginTestChecker) UserIDByToken(_ context.Context, token string) (int64, error) {
	userID, ok := c.LoggedSessions[token]
	if !ok {
		return 0, ErrNoSession
	}
	return userID, nil
}
