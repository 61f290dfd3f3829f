package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// DefaultCookieName 預設 session cookie 名稱
const DefaultCookieName = "kd_session"

// Manager 負責 cookie 的讀寫，並委派 token 的簽發與解析給 Store
// handler 只與 Manager 互動，不直接碰 cookie 或 Store
type Manager struct {
	store      Store
	cookieName string
	ttl        time.Duration
	secure     bool
}

func NewManager(store Store, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		store:      store,
		cookieName: DefaultCookieName,
		ttl:        ttl,
		secure:     secure,
	}
}

// UserID 從請求 cookie 解析出使用者 ID，無 session 時回傳 ErrNotFound
func (m *Manager) UserID(c echo.Context) (int, error) {
	ck, err := c.Cookie(m.cookieName)
	if err != nil || ck.Value == "" {
		return 0, ErrNotFound
	}
	return m.store.Resolve(c.Request().Context(), ck.Value)
}

// Establish 簽發新 token 並設定 session cookie
func (m *Manager) Establish(c echo.Context, userID int) error {
	token, err := m.store.Issue(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
		Expires:  time.Now().Add(m.ttl),
	})
	return nil
}

// Destroy 撤銷既有 token 並清除 cookie，無 session 時也不報錯（冪等）
func (m *Manager) Destroy(c echo.Context) {
	if ck, err := c.Cookie(m.cookieName); err == nil && ck.Value != "" {
		_ = m.store.Revoke(c.Request().Context(), ck.Value)
	}
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
		MaxAge:   -1,
	})
}
