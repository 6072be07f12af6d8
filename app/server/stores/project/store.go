// Package project 负责领域与项目在关系型数据库中的读写
package project

import (
	"climate-solutions/app/server/models"
	"context"
	"errors"
	"fmt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"strings"
)

// 更新时写入的全部字段
var editableColumns = []string{
	"title",
	"feature_img_url",
	"summary_short",
	"intro_short",
	"impact",
	"original_source_url",
	"sector_id",
}

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) withSector(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Model(&models.Project{}).Joins("Sector")
}

func (s *Store) ListAll(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := s.withSector(ctx).Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (s *Store) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	var p models.Project
	if err := s.withSector(ctx).Where(`"projects"."id" = ?`, id).Take(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find project %d: %w", id, err)
	}
	return &p, nil
}

// FindBySector 按领域名称做不区分大小写的子串匹配
func (s *Store) FindBySector(ctx context.Context, pattern string) ([]models.Project, error) {
	var projects []models.Project
	if err := s.withSector(ctx).
		Where(`"Sector"."sector_name" ILIKE ?`, "%"+escapeLike(pattern)+"%").
		Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("find projects by sector %q: %w", pattern, err)
	}
	if len(projects) == 0 {
		return nil, ErrNotFound
	}
	return projects, nil
}

func (s *Store) Create(ctx context.Context, data *models.Project) error {
	data.ID = 0
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(data).Error; err != nil {
		return newValidationError(err)
	}
	return nil
}

// Update 对不存在的 id 不做任何事
func (s *Store) Update(ctx context.Context, id uint, data *models.Project) error {
	if err := s.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", id).
		Select(editableColumns).
		Omit(clause.Associations).
		Updates(data).Error; err != nil {
		return newValidationError(err)
	}
	return nil
}

// Delete 对不存在的 id 不做任何事
func (s *Store) Delete(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&models.Project{}, id).Error; err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	return nil
}

func (s *Store) ListSectors(ctx context.Context) ([]models.Sector, error) {
	var sectors []models.Sector
	if err := s.db.WithContext(ctx).Find(&sectors).Error; err != nil {
		return nil, fmt.Errorf("list sectors: %w", err)
	}
	return sectors, nil
}

// Ping 检查数据库连接是否可用
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
