package models

type Sector struct {
	ID         uint   `gorm:"column:id;primaryKey" json:"id"`
	SectorName string `gorm:"column:sector_name" json:"sector_name"` // 领域名称
}
