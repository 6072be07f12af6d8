package handlers

import (
	"climate-solutions/app/server/middlewares"
	"github.com/labstack/echo/v4"
)

func RegisterHandlers(e *echo.Echo, a *App) {
	ensureLogin := middlewares.EnsureLogin(a.l)

	e.GET("/healthz", a.HealthCheck)

	e.GET("/", a.Home)
	e.GET("/about", a.About)

	e.GET("/solutions/projects", a.ProjectList)
	e.GET("/solutions/projects/:id", a.ProjectGet)
	e.GET("/solutions/addProject", a.ProjectAddForm, ensureLogin)
	e.POST("/solutions/addProject", a.ProjectAdd, ensureLogin)
	e.GET("/solutions/editProject/:id", a.ProjectEditForm, ensureLogin)
	e.POST("/solutions/editProject", a.ProjectEdit, ensureLogin)
	e.GET("/solutions/deleteProject/:id", a.ProjectDelete, ensureLogin)

	e.GET("/login", a.LoginForm)
	e.POST("/login", a.Login)
	e.GET("/register", a.RegisterForm)
	e.POST("/register", a.Register)
	e.GET("/logout", a.Logout, ensureLogin)
	e.GET("/userHistory", a.UserHistory, ensureLogin)
}
