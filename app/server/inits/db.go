package inits

import (
	"climate-solutions/app/server/config"
	"climate-solutions/app/server/models"
	"crypto/tls"
	"fmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func DB(cfg *config.Config, l *zap.Logger) (db *gorm.DB, err error) {
	// 连接参数
	connConfig, err := pgx.ParseConfig("")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare connection config: %w", err)
	}
	connConfig.Host = cfg.Postgres.Host
	connConfig.Port = cfg.Postgres.Port
	connConfig.User = cfg.Postgres.User
	connConfig.Password = cfg.Postgres.Password
	connConfig.Database = cfg.Postgres.Database

	// 托管环境要求 TLS ，但证书不做校验
	connConfig.TLSConfig = &tls.Config{
		ServerName:         cfg.Postgres.Host,
		InsecureSkipVerify: true,
	}
	connConfig.Fallbacks = nil

	sqlDB := stdlib.OpenDB(*connConfig)

	gormLogLevel := logger.Warn
	if !cfg.System.IsProd {
		gormLogLevel = logger.Info
	}

	// 打开连接
	if db, err = gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(gormLogLevel),
	}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = mig(db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 初始化启动数据
	if err = initData(db, l); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to init data into database: %w", err)
	}

	// 返回
	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Sector{},
		&models.Project{},
	)
}

func initData(db *gorm.DB, l *zap.Logger) (err error) {
	// 查询现有记录数量
	var counter int64

	// 初始化领域
	if err = db.Model(&models.Sector{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get sector count: %w", err)
	} else if counter == 0 { // 没有任何领域，添加初始领域
		sectors := []*models.Sector{
			{SectorName: "Land Sinks"},
			{SectorName: "Industry"},
			{SectorName: "Transportation"},
			{SectorName: "Electricity"},
			{SectorName: "Food, Agriculture, and Land Use"},
			{SectorName: "Buildings"},
			{SectorName: "Health and Education"},
			{SectorName: "Coastal and Ocean Sinks"},
			{SectorName: "Engineered Sinks"},
		}
		if err = db.Create(sectors).Error; err != nil {
			return fmt.Errorf("failed to create initial sectors: %w", err)
		}
		l.Info("seeded sectors", zap.Int("count", len(sectors)))
	}

	// 已有数据或全部导入成功
	return nil
}
