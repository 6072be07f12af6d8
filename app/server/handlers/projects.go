package handlers

import (
	"climate-solutions/app/server/constants"
	"climate-solutions/app/server/stores/project"
	"climate-solutions/app/server/types"
	"climate-solutions/app/server/utils"
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"strings"
)

// pathID 解析路径中的项目 id ，跨越多段路径时视为未匹配的路由
func pathID(c echo.Context) (uint, error) {
	raw := c.Param("id")
	if strings.Contains(raw, "/") {
		return 0, echo.ErrNotFound
	}
	return utils.ParseID(raw)
}

func (a *App) ProjectList(c echo.Context) error {
	rctx := c.Request().Context()

	// 按领域筛选
	if sector := c.QueryParam("sector"); sector != "" {
		projects, err := a.projects.FindBySector(rctx, sector)
		if err != nil {
			if !errors.Is(err, project.ErrNotFound) {
				a.l.Error("failed to find projects by sector", zap.String("sector", sector), zap.Error(err))
			}
			return a.er(c, http.StatusNotFound, constants.MessageSectorNotFound)
		}

		return a.render(c, http.StatusOK, constants.ViewProjects, echo.Map{
			"Projects": projects,
		})
	}

	projects, err := a.projects.ListAll(rctx)
	if err != nil {
		a.l.Error("failed to list projects", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MessageErrorPrefix+err.Error())
	}

	return a.render(c, http.StatusOK, constants.ViewProjects, echo.Map{
		"Projects": projects,
	})
}

func (a *App) ProjectGet(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		if errors.Is(err, echo.ErrNotFound) {
			return err
		}
		return a.er(c, http.StatusNotFound, constants.MessageProjectNotFound)
	}

	p, err := a.projects.FindByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return a.er(c, http.StatusNotFound, constants.MessageProjectNotFound)
		}
		a.l.Error("failed to get project", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MessageErrorPrefix+err.Error())
	}

	return a.render(c, http.StatusOK, constants.ViewProject, echo.Map{
		"Project": p,
	})
}

func (a *App) ProjectAddForm(c echo.Context) error {
	sectors, err := a.projects.ListSectors(c.Request().Context())
	if err != nil {
		a.l.Error("failed to list sectors", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MessageErrorPrefix+err.Error())
	}

	return a.render(c, http.StatusOK, constants.ViewAddProject, echo.Map{
		"Sectors": sectors,
	})
}

func (a *App) ProjectAdd(c echo.Context) error {
	// 绑定请求体
	var req types.ProjectForm
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MessageErrorPrefix+err.Error())
	}

	if err := a.projects.Create(c.Request().Context(), req.Model()); err != nil {
		a.l.Error("failed to create project", zap.Any("project", req), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MessageErrorPrefix+err.Error())
	}

	return c.Redirect(http.StatusFound, "/solutions/projects")
}

func (a *App) ProjectEditForm(c echo.Context) error {
	rctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		if errors.Is(err, echo.ErrNotFound) {
			return err
		}
		return a.er(c, http.StatusNotFound, constants.MessageProjectNotFound)
	}

	p, err := a.projects.FindByID(rctx, id)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return a.er(c, http.StatusNotFound, constants.MessageProjectNotFound)
		}
		a.l.Error("failed to get project", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MessageErrorPrefix+err.Error())
	}

	sectors, err := a.projects.ListSectors(rctx)
	if err != nil {
		a.l.Error("failed to list sectors", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MessageErrorPrefix+err.Error())
	}

	return a.render(c, http.StatusOK, constants.ViewEditProject, echo.Map{
		"Project": p,
		"Sectors": sectors,
	})
}

func (a *App) ProjectEdit(c echo.Context) error {
	// 绑定请求体， id 也在请求体中
	var req types.ProjectForm
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MessageErrorPrefix+err.Error())
	}

	if err := a.projects.Update(c.Request().Context(), req.ID, req.Model()); err != nil {
		a.l.Error("failed to update project", zap.Uint("id", req.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MessageErrorPrefix+err.Error())
	}

	return c.Redirect(http.StatusFound, "/solutions/projects")
}

func (a *App) ProjectDelete(c echo.Context) error {
	// 无法解析的 id 不可能对应任何记录，直接视为删除完成
	id, err := pathID(c)
	if errors.Is(err, echo.ErrNotFound) {
		return err
	}
	if err == nil {
		if err = a.projects.Delete(c.Request().Context(), id); err != nil {
			a.l.Error("failed to delete project", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError, constants.MessageErrorPrefix+err.Error())
		}
	}

	return c.Redirect(http.StatusFound, "/solutions/projects")
}
