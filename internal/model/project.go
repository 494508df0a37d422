package model

// Project 毕业设计项目队伍
// PanelID 为空表示尚未分配答辩小组；GuideID 为 0 表示暂无指导教师记录
type Project struct {
	Model
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
	Domain     string `gorm:"type:varchar(100)" json:"domain"` // 项目领域（如物联网、机器学习）
	School     string `gorm:"type:varchar(100);not null;index:idx_project_ctx" json:"school"`
	Department string `gorm:"type:varchar(100);not null;index:idx_project_ctx" json:"department"`
	GuideID    uint   `gorm:"default:0" json:"guide_id"`
	PanelID    *uint  `gorm:"default:null;index" json:"panel_id"`

	Guide    Faculty   `gorm:"foreignKey:GuideID;references:ID" json:"guide,omitempty"`
	Students []Student `gorm:"foreignKey:ProjectID;references:ID" json:"students,omitempty"`
}
