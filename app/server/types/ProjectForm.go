package types

import "climate-solutions/app/server/models"

// ProjectForm 新建与编辑项目时提交的表单
type ProjectForm struct {
	ID                uint   `form:"id"` // 仅编辑时使用
	Title             string `form:"title"`
	FeatureImgURL     string `form:"feature_img_url"`
	SummaryShort      string `form:"summary_short"`
	IntroShort        string `form:"intro_short"`
	Impact            string `form:"impact"`
	OriginalSourceURL string `form:"original_source_url"`
	SectorID          uint   `form:"sector_id"`
}

func (f *ProjectForm) Model() *models.Project {
	return &models.Project{
		Title:             f.Title,
		FeatureImgURL:     f.FeatureImgURL,
		SummaryShort:      f.SummaryShort,
		IntroShort:        f.IntroShort,
		Impact:            f.Impact,
		OriginalSourceURL: f.OriginalSourceURL,
		SectorID:          f.SectorID,
	}
}
