package entity

import (
	"context"
	"fmt"
)

type ctxKey int

const (
	ctxKeyUser ctxKey = iota
	ctxKeyToken
)

// CtxWithUser stores the station attendant or manager the request acts for.
func CtxWithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, ctxKeyUser, user)
}

// UserFromCtx returns the session user or ErrUnauthenticated when the request never went through auth.
func UserFromCtx(ctx context.Context) (User, error) {
	user, ok := ctx.Value(ctxKeyUser).(User)
	if !ok || user.ID <= 0 {
		return User{}, fmt.Errorf("%w: no session user", ErrUnauthenticated)
	}

	return user, nil
}

// CtxWithJWT stores the caller's backend token; the backend client forwards it on every call.
func CtxWithJWT(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKeyToken, token)
}

func JWTFromCtx(ctx context.Context) string {
	token, _ := ctx.Value(ctxKeyToken).(string)
	return token
}
