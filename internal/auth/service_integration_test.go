//go:build integration_test || all_tests

package auth

import (
	"testing"
	"time"

	testingpkg "github.com/WaekyTV/fitquest-backend/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_SessionLifecycle(t *testing.T) {
	ctx, rdb := testingpkg.GetRedisClientAndCtx(t)
	defer func() {
		assert.NoError(t, rdb.Close())
	}()

	users := &testUserSource{users: map[string]User{
		"mile": {ID: 42, Username: "mile", PasswordHash: testPasswordHash},
	}}
	service := NewAuthService(users, time.Hour, rdb)
	checker := NewLoginChecker(time.Hour, rdb)

	token, err := service.Login(ctx, Credentials{
		Username: "mile",
		Password: "testpass",
	}, time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := checker.UserIDByToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	logged, err := checker.IsLogged(ctx, token)
	require.NoError(t, err)
	assert.True(t, logged)

	removed, err := service.Logout(ctx, token)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = checker.UserIDByToken(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestService_ScanAndClean_removesExpired(t *testing.T) {
	ctx, rdb := testingpkg.GetRedisClientAndCtx(t)
	defer func() {
		assert.NoError(t, rdb.Close())
	}()

	users := &testUserSource{users: map[string]User{
		"mile": {ID: 42, Username: "mile", PasswordHash: testPasswordHash},
	}}
	service := NewAuthService(users, time.Minute, rdb)
	checker := NewLoginChecker(time.Minute, rdb)

	// session created well past the TTL
	staleToken, err := service.Login(ctx, Credentials{
		Username: "mile",
		Password: "testpass",
	}, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	freshToken, err := service.Login(ctx, Credentials{
		Username: "mile",
		Password: "testpass",
	}, time.Now())
	require.NoError(t, err)

	service.ScanAndClean(ctx)

	_, err = checker.UserIDByToken(ctx, staleToken)
	assert.ErrorIs(t, err, ErrNoSession)

	userID, err := checker.UserIDByToken(ctx, freshToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	_, err = service.Logout(ctx, freshToken)
	assert.NoError(t, err)
}
