// Package session 实现基于 cookie 的登录会话。
// cookie 内容是 HS256 签名的 JWT ，还原各段原始字节后经 AES-GCM 加密，只做一次 base64url 编码。
package session

import (
	"climate-solutions/app/server/constants"
	jwtutil "climate-solutions/app/server/jwt"
	"climate-solutions/app/server/models"
	"context"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"time"
)

type User struct {
	UserName     string              `json:"userName"`
	Email        string              `json:"email"`
	LoginHistory []models.LoginEntry `json:"loginHistory"`
}

type Session struct {
	ID        string
	User      *User
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type claims struct {
	User *User `json:"user"`
	jwt.RegisteredClaims
}

// Revoker 记录已注销的会话，为 nil 时注销只清除 cookie
type Revoker interface {
	Revoke(ctx context.Context, id string, ttl time.Duration) error
	IsRevoked(ctx context.Context, id string) (bool, error)
}

type Manager struct {
	l       *zap.Logger
	jwt     *jwtutil.JWT
	aead    cipher.AEAD // cookie 加密 (AES-256-GCM)
	revoker Revoker
	secure  bool

	duration       time.Duration
	activeDuration time.Duration
	now            func() time.Time
}

func NewManager(l *zap.Logger, j *jwtutil.JWT, encryptKey string, revoker Revoker, secure bool) (*Manager, error) {
	if len(encryptKey) == 0 {
		return nil, fmt.Errorf("encrypt key is empty")
	}

	aead, err := newAEAD(encryptKey)
	if err != nil {
		return nil, err
	}

	return &Manager{
		l:              l,
		jwt:            j,
		aead:           aead,
		revoker:        revoker,
		secure:         secure,
		duration:       constants.SessionDuration,
		activeDuration: constants.SessionActiveDuration,
		now:            time.Now,
	}, nil
}

// Get 返回当前请求的会话，未登录时为 nil
func Get(c echo.Context) *Session {
	s, _ := c.Get(constants.ContextKeySession).(*Session)
	return s
}

// Middleware 解析 cookie 中的会话并放入 context ，有活动时顺延有效期
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if s := m.load(c); s != nil {
				c.Set(constants.ContextKeySession, s)
			}
			return next(c)
		}
	}
}

func (m *Manager) load(c echo.Context) *Session {
	cookie, err := c.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	s, err := m.decode(cookie.Value)
	if err != nil {
		m.l.Debug("discard invalid session cookie", zap.Error(err))
		m.clearCookie(c)
		return nil
	}

	if m.revoker != nil {
		// redis 不可用时不影响正常会话
		if revoked, err := m.revoker.IsRevoked(c.Request().Context(), s.ID); err != nil {
			m.l.Error("failed to check session revocation", zap.String("id", s.ID), zap.Error(err))
		} else if revoked {
			m.clearCookie(c)
			return nil
		}
	}

	now := m.now()
	if s.ExpiresAt.Sub(now) < m.activeDuration {
		s.ExpiresAt = now.Add(m.activeDuration)
		if err = m.write(c, s); err != nil {
			m.l.Error("failed to extend session", zap.String("id", s.ID), zap.Error(err))
		}
	}

	return s
}

// Login 为用户创建新会话并写入 cookie
func (m *Manager) Login(c echo.Context, user *models.User) error {
	now := m.now()
	s := &Session{
		ID: uuid.NewString(),
		User: &User{
			UserName:     user.UserName,
			Email:        user.Email,
			LoginHistory: truncateHistory(user.LoginHistory),
		},
		IssuedAt:  now,
		ExpiresAt: now.Add(m.duration),
	}

	if err := m.write(c, s); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	c.Set(constants.ContextKeySession, s)
	return nil
}

// Reset 注销当前会话
func (m *Manager) Reset(c echo.Context) error {
	s := Get(c)

	m.clearCookie(c)
	c.Set(constants.ContextKeySession, nil)

	if s != nil && m.revoker != nil {
		if err := m.revoker.Revoke(c.Request().Context(), s.ID, s.ExpiresAt.Sub(m.now())); err != nil {
			return fmt.Errorf("revoke session %s: %w", s.ID, err)
		}
	}

	return nil
}

func (m *Manager) write(c echo.Context, s *Session) error {
	value, err := m.encode(s)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func (m *Manager) clearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) encode(s *Session) (string, error) {
	token, err := m.jwt.Sign(&claims{
		User: s.User,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.ID,
			IssuedAt:  jwt.NewNumericDate(s.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	packed, err := packToken(token)
	if err != nil {
		return "", fmt.Errorf("pack session token: %w", err)
	}

	sealed, err := m.seal(packed)
	if err != nil {
		return "", fmt.Errorf("encrypt session token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (m *Manager) decode(value string) (*Session, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("decode session cookie: %w", err)
	}

	packed, err := m.open(sealed)
	if err != nil {
		return nil, fmt.Errorf("decrypt session cookie: %w", err)
	}

	token, err := unpackToken(packed)
	if err != nil {
		return nil, err
	}

	var cl claims
	if err = m.jwt.Parse(token, &cl, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired()); err != nil {
		return nil, err
	}
	if cl.User == nil || cl.User.UserName == "" {
		return nil, fmt.Errorf("session without user")
	}

	s := &Session{
		ID:   cl.ID,
		User: cl.User,
	}
	if cl.IssuedAt != nil {
		s.IssuedAt = cl.IssuedAt.Time
	}
	s.ExpiresAt = cl.ExpiresAt.Time

	return s, nil
}

// truncateHistory 会话中的登录时间只保留到秒
func truncateHistory(history []models.LoginEntry) []models.LoginEntry {
	out := make([]models.LoginEntry, len(history))
	for i, entry := range history {
		out[i] = models.LoginEntry{
			DateTime:  entry.DateTime.Truncate(time.Second),
			UserAgent: entry.UserAgent,
		}
	}
	return out
}
