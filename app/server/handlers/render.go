package handlers

import (
	"climate-solutions/app/server/constants"
	"climate-solutions/app/server/session"
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

// render 渲染模板，所有页面都能拿到当前会话
func (a *App) render(c echo.Context, statusCode int, view string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	data["Session"] = session.Get(c)

	return c.Render(statusCode, view, data)
}

// er 渲染错误页面， 404 与其它错误使用不同模板
func (a *App) er(c echo.Context, statusCode int, message string) error {
	view := constants.ViewError
	if statusCode == http.StatusNotFound {
		view = constants.ViewNotFound
	}

	return a.render(c, statusCode, view, echo.Map{
		"Message": message,
	})
}

// HTTPErrorHandler 处理未匹配的路由与未被处理的错误
func (a *App) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	statusCode := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		statusCode = he.Code
	}

	var rerr error
	switch statusCode {
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		rerr = a.er(c, http.StatusNotFound, constants.MessageViewNotFound)
	default:
		a.l.Error("unhandled error", zap.String("URI", c.Request().RequestURI), zap.Error(err))
		rerr = a.er(c, statusCode, constants.MessageErrorPrefix+http.StatusText(statusCode))
	}

	if rerr != nil {
		a.l.Error("failed to render error view", zap.Error(rerr))
		_ = c.NoContent(statusCode)
	}
}
