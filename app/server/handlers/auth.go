package handlers

import (
	"climate-solutions/app/server/constants"
	"climate-solutions/app/server/stores/auth"
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

// authErrorMessage 转换为表单上展示的信息，不包含密码或数据库细节
func authErrorMessage(err error, userName string) string {
	switch {
	case errors.Is(err, auth.ErrPasswordMismatch):
		return "Passwords do not match"
	case errors.Is(err, auth.ErrUserNameTaken):
		return "User Name already taken"
	case errors.Is(err, auth.ErrHashPassword):
		return "There was an error encrypting the password"
	case errors.Is(err, auth.ErrCreateUser):
		return "There was an error creating the user"
	case errors.Is(err, auth.ErrUserNotFound):
		return "Unable to find user: " + userName
	case errors.Is(err, auth.ErrIncorrectPassword):
		return "Incorrect Password for user: " + userName
	default:
		return "There was an error verifying the user"
	}
}

// isUserError 用户输入导致的失败，无需记录错误日志
func isUserError(err error) bool {
	switch err {
	case auth.ErrPasswordMismatch, auth.ErrUserNameTaken, auth.ErrUserNotFound, auth.ErrIncorrectPassword:
		return true
	}
	return false
}

func (a *App) LoginForm(c echo.Context) error {
	return a.render(c, http.StatusOK, constants.ViewLogin, echo.Map{
		"ErrorMessage": "",
		"UserName":     "",
	})
}

func (a *App) Login(c echo.Context) error {
	// 绑定请求体
	var req auth.LoginInput
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MessageErrorPrefix+err.Error())
	}
	req.UserAgent = c.Request().UserAgent()

	user, err := a.users.Authenticate(c.Request().Context(), req)
	if err != nil {
		if !isUserError(err) {
			a.l.Error("failed to authenticate user", zap.String("userName", req.UserName), zap.Error(err))
		}
		return a.render(c, http.StatusOK, constants.ViewLogin, echo.Map{
			"ErrorMessage": authErrorMessage(err, req.UserName),
			"UserName":     req.UserName,
		})
	}

	if err = a.sessions.Login(c, user); err != nil {
		a.l.Error("failed to create session", zap.String("userName", user.UserName), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MessageErrorPrefix+err.Error())
	}

	return c.Redirect(http.StatusFound, "/solutions/projects")
}

func (a *App) RegisterForm(c echo.Context) error {
	return a.render(c, http.StatusOK, constants.ViewRegister, echo.Map{
		"ErrorMessage":   "",
		"SuccessMessage": "",
		"UserName":       "",
	})
}

func (a *App) Register(c echo.Context) error {
	// 绑定请求体
	var req auth.RegisterInput
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MessageErrorPrefix+err.Error())
	}

	if err := a.users.Register(c.Request().Context(), req); err != nil {
		if !isUserError(err) {
			a.l.Error("failed to register user", zap.String("userName", req.UserName), zap.Error(err))
		}
		return a.render(c, http.StatusOK, constants.ViewRegister, echo.Map{
			"ErrorMessage":   authErrorMessage(err, req.UserName),
			"SuccessMessage": "",
			"UserName":       req.UserName,
		})
	}

	return a.render(c, http.StatusOK, constants.ViewRegister, echo.Map{
		"ErrorMessage":   "",
		"SuccessMessage": constants.MessageUserCreated,
		"UserName":       "",
	})
}

func (a *App) Logout(c echo.Context) error {
	if err := a.sessions.Reset(c); err != nil {
		// cookie 已清除，黑名单写入失败只记录
		a.l.Error("failed to revoke session", zap.Error(err))
	}

	return c.Redirect(http.StatusFound, "/")
}

func (a *App) UserHistory(c echo.Context) error {
	return a.render(c, http.StatusOK, constants.ViewUserHistory, nil)
}
