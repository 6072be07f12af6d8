package main

import (
	"climate-solutions/app/server/handlers"
	"climate-solutions/app/server/inits"
	"climate-solutions/app/server/jwt"
	"climate-solutions/app/server/session"
	"climate-solutions/app/server/stores/auth"
	"climate-solutions/app/server/stores/project"
	"context"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}
	defer func() { _ = l.Sync() }()

	// 切换日志系统
	l.Debug("logger initialized")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 初始化数据库连接
	db, err := inits.DB(cfg, l)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}
	projects := project.New(db)

	// 初始化 mongodb 连接
	mongoClient, usersColl, err := inits.Mongo(ctx, cfg.Mongo.ConnectionString)
	if err != nil {
		l.Fatal("error initializing MongoDB connection", zap.Error(err))
	}
	users := auth.New(usersColl)

	// 初始化 redis 连接（可选）
	rdb, err := inits.Redis(ctx, cfg.Redis.ConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}
	var revoker session.Revoker
	if rdb != nil {
		revoker = session.NewRedisRevoker(rdb)
	} else {
		l.Info("redis not configured, logout only clears the cookie")
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.SessionSecret)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 初始化会话
	sessions, err := session.NewManager(l, j, cfg.Security.SessionEncryptKey, revoker, cfg.System.IsProd)
	if err != nil {
		l.Fatal("error initializing session manager", zap.Error(err))
	}

	// 加载模板
	renderer, err := handlers.NewTemplateRenderer(cfg.System.ViewsDir)
	if err != nil {
		l.Fatal("error loading views", zap.Error(err))
	}

	// 准备 handler app
	handlerApp := handlers.NewApp(l, projects, users, sessions)

	// 准备 echo 服务
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.HTTPErrorHandler = handlerApp.HTTPErrorHandler
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogMethod: true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("method", v.Method),
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(sessions.Middleware())

	// 静态文件
	e.Static("/", cfg.System.PublicDir)

	// 绑定 echo 服务
	handlers.RegisterHandlers(e, handlerApp)

	// 启动 echo 服务
	go func() {
		if err := e.Start(cfg.System.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	l.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		l.Error("error shutting down the server", zap.Error(err))
	}
	if err := projects.Close(); err != nil {
		l.Error("error closing DB connection", zap.Error(err))
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		l.Error("error closing MongoDB connection", zap.Error(err))
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			l.Error("error closing Redis connection", zap.Error(err))
		}
	}
}
