package middlewares

import (
	"climate-solutions/app/server/session"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

// EnsureLogin 只检查已解析的会话，不访问任何存储
func EnsureLogin(l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if s := session.Get(c); s == nil || s.User == nil {
				l.Debug("login required", zap.String("URI", c.Request().RequestURI))
				return c.Redirect(http.StatusFound, "/login")
			}

			// 继续处理
			return next(c)
		}
	}
}
