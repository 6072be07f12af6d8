package handlers

import (
	"climate-solutions/app/server/constants"
	"github.com/labstack/echo/v4"
	"net/http"
)

func (a *App) Home(c echo.Context) error {
	return a.render(c, http.StatusOK, constants.ViewHome, nil)
}

func (a *App) About(c echo.Context) error {
	return a.render(c, http.StatusOK, constants.ViewAbout, nil)
}
