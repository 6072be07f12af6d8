package handlers

import (
	"climate-solutions/app/server/models"
	"climate-solutions/app/server/session"
	"climate-solutions/app/server/stores/auth"
	"climate-solutions/app/server/stores/project"
	"context"
	"go.uber.org/zap"
)

type ProjectStore interface {
	ListAll(ctx context.Context) ([]models.Project, error)
	FindByID(ctx context.Context, id uint) (*models.Project, error)
	FindBySector(ctx context.Context, pattern string) ([]models.Project, error)
	Create(ctx context.Context, data *models.Project) error
	Update(ctx context.Context, id uint, data *models.Project) error
	Delete(ctx context.Context, id uint) error
	ListSectors(ctx context.Context) ([]models.Sector, error)
	Ping(ctx context.Context) error
}

type UserStore interface {
	Register(ctx context.Context, in auth.RegisterInput) error
	Authenticate(ctx context.Context, in auth.LoginInput) (*models.User, error)
	Ping(ctx context.Context) error
}

var _ ProjectStore = (*project.Store)(nil)
var _ UserStore = (*auth.Store)(nil)

type App struct {
	l        *zap.Logger      // 日志
	projects ProjectStore     // 项目与领域（关系型数据库）
	users    UserStore        // 用户（文档数据库）
	sessions *session.Manager // 登录会话
}

func NewApp(l *zap.Logger, projects ProjectStore, users UserStore, sessions *session.Manager) *App {
	return &App{
		l:        l,
		projects: projects,
		users:    users,
		sessions: sessions,
	}
}
