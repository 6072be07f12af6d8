package handlers

import (
	"context"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"time"
)

// HealthCheck 检查两个数据库连接，任一不可用时返回 503
func (a *App) HealthCheck(c echo.Context) error {
	rctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	statusCode := http.StatusOK
	res := echo.Map{
		"postgres": "ok",
		"mongodb":  "ok",
	}

	if err := a.projects.Ping(rctx); err != nil {
		a.l.Error("postgres health check failed", zap.Error(err))
		res["postgres"] = "unavailable"
		statusCode = http.StatusServiceUnavailable
	}
	if err := a.users.Ping(rctx); err != nil {
		a.l.Error("mongodb health check failed", zap.Error(err))
		res["mongodb"] = "unavailable"
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, res)
}
