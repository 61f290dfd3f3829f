package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"kapda-dekho/internal/database"
	"kapda-dekho/internal/model"
	"kapda-dekho/internal/session"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	t.Cleanup(restoreStubs)

	// bind error
	e := echo.New()
	e.Binder = errBinder{}
	ctx, rec := newPostCtx(e, "")
	require.NoError(t, LoginHandler(&database.FakeDB{}, fakeManager())(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Email and password are required")

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newPostCtx(e, `{}`)
	require.NoError(t, LoginHandler(&database.FakeDB{}, fakeManager())(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// whitespace-only fields
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newPostCtx(e, `{"email":" ","password":" "}`)
	require.NoError(t, LoginHandler(&database.FakeDB{}, fakeManager())(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// unknown email 與 wrong password 回傳完全相同的 401
	getUserByEmail = func(ctx context.Context, db database.DB, email string) (*model.User, error) {
		return nil, pgx.ErrNoRows
	}
	ctx, rec = newPostCtx(e, `{"email":"ghost@example.com","password":"pw"}`)
	require.NoError(t, LoginHandler(&database.FakeDB{}, fakeManager())(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	unknownBody := rec.Body.String()
	require.JSONEq(t, `{"error":"Invalid credentials"}`, unknownBody)

	getUserByEmail = func(ctx context.Context, db database.DB, email string) (*model.User, error) {
		return &model.User{ID: 5, Name: "Alice", Email: email, PasswordHash: "hash"}, nil
	}
	comparePassword = func(hash, password string) error { return errors.New("mismatch") }
	ctx, rec = newPostCtx(e, `{"email":"alice@example.com","password":"wrong"}`)
	require.NoError(t, LoginHandler(&database.FakeDB{}, fakeManager())(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, unknownBody, rec.Body.String())

	// session establish failure
	comparePassword = func(hash, password string) error { return nil }
	badSM := session.NewManager(&session.FakeStore{
		IssueFn: func(ctx context.Context, userID int) (string, error) { return "", errors.New("issue") },
	}, time.Hour, false)
	ctx, rec = newPostCtx(e, `{"email":"alice@example.com","password":"pw"}`)
	require.NoError(t, LoginHandler(&database.FakeDB{}, badSM)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success：email 正規化、session 建立、不回傳哈希
	var gotEmail string
	getUserByEmail = func(ctx context.Context, db database.DB, email string) (*model.User, error) {
		gotEmail = email
		return &model.User{ID: 5, Name: "Alice", Email: email, PasswordHash: "hash"}, nil
	}
	ctx, rec = newPostCtx(e, `{"email":" ALICE@Example.com ","password":"pw"}`)
	require.NoError(t, LoginHandler(&database.FakeDB{}, fakeManager())(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "alice@example.com", gotEmail)
	require.JSONEq(t, `{"user":{"id":5,"name":"Alice","email":"alice@example.com"}}`, rec.Body.String())
	require.NotContains(t, rec.Body.String(), "hash")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "tok", cookies[0].Value)
}
