package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kapda-dekho/internal/database"
	"kapda-dekho/internal/middleware"
	"kapda-dekho/internal/model"
	"kapda-dekho/internal/session"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newMeCtx(e *echo.Echo, userID any) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: session.DefaultCookieName, Value: "tok"})
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	if userID != nil {
		ctx.Set(middleware.ContextUserIDKey, userID)
	}
	return ctx, rec
}

func TestMeHandler(t *testing.T) {
	t.Cleanup(restoreStubs)
	e := echo.New()

	t.Run("missing context user", func(t *testing.T) {
		ctx, rec := newMeCtx(e, nil)
		require.NoError(t, MeHandler(&database.FakeDB{}, fakeManager())(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"error":"Not authenticated"}`, rec.Body.String())
	})

	t.Run("stale session cleared", func(t *testing.T) {
		getUserByID = func(ctx context.Context, db database.DB, userID int) (*model.User, error) {
			return nil, pgx.ErrNoRows
		}
		revoked := false
		sm := session.NewManager(&session.FakeStore{
			RevokeFn: func(ctx context.Context, token string) error {
				revoked = true
				return nil
			},
		}, time.Hour, false)

		ctx, rec := newMeCtx(e, 7)
		require.NoError(t, MeHandler(&database.FakeDB{}, sm)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"error":"Not authenticated"}`, rec.Body.String())
		require.True(t, revoked)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, -1, cookies[0].MaxAge)
	})

	t.Run("store failure", func(t *testing.T) {
		getUserByID = func(ctx context.Context, db database.DB, userID int) (*model.User, error) {
			return nil, errors.New("conn refused")
		}
		ctx, rec := newMeCtx(e, 7)
		require.NoError(t, MeHandler(&database.FakeDB{}, fakeManager())(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		getUserByID = func(ctx context.Context, db database.DB, userID int) (*model.User, error) {
			require.Equal(t, 7, userID)
			return &model.User{ID: 7, Name: "Alice", Email: "alice@example.com", PasswordHash: "hash"}, nil
		}
		ctx, rec := newMeCtx(e, 7)
		require.NoError(t, MeHandler(&database.FakeDB{}, fakeManager())(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"user":{"id":7,"name":"Alice","email":"alice@example.com"}}`, rec.Body.String())
		require.NotContains(t, rec.Body.String(), "hash")
	})
}
