package auth

import "context"

type Checker interface {
	IsLogged(ctx context.Context, token string) (bool, error)
	UserIDByToken(ctx context.Context, token string) (int64, error)
}
