package models

type Project struct {
	ID uint `gorm:"column:id;primaryKey" json:"id"`

	// 项目展示信息
	Title             string `gorm:"column:title" json:"title"`
	FeatureImgURL     string `gorm:"column:feature_img_url" json:"feature_img_url"`
	SummaryShort      string `gorm:"column:summary_short;type:text" json:"summary_short"`
	IntroShort        string `gorm:"column:intro_short;type:text" json:"intro_short"`
	Impact            string `gorm:"column:impact;type:text" json:"impact"`
	OriginalSourceURL string `gorm:"column:original_source_url" json:"original_source_url"`

	// 所属领域
	SectorID uint   `gorm:"column:sector_id;index" json:"sector_id"`
	Sector   Sector `gorm:"foreignKey:SectorID" json:"Sector"` // 查询时总是连接
}
