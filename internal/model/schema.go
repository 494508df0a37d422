package model

import "gorm.io/datatypes"

// 评审归属的教师角色
const (
	FacultyTypeGuide = "guide" // 指导教师评审
	FacultyTypePanel = "panel" // 答辩小组评审
)

// MarkingSchema 某学院/系的评分配置：该上下文下有哪些评审、各评审由谁评、评哪些组件
// 每个 (school, department) 至多一份配置
type MarkingSchema struct {
	Model
	School     string `gorm:"type:varchar(100);not null;uniqueIndex:idx_schema_ctx" json:"school"`
	Department string `gorm:"type:varchar(100);not null;uniqueIndex:idx_schema_ctx" json:"department"`

	Reviews []SchemaReview `gorm:"foreignKey:SchemaID;references:ID" json:"reviews"`
}

// SchemaReview 配置中的一项评审定义
type SchemaReview struct {
	Model
	SchemaID     uint           `gorm:"not null;index" json:"-"`
	ReviewName   string         `gorm:"type:varchar(50);not null" json:"review_name"` // 如 review1、review2
	DisplayName  string         `gorm:"type:varchar(100)" json:"display_name"`
	FacultyType  string         `gorm:"type:varchar(10);not null" json:"faculty_type"` // guide / panel
	Components   datatypes.JSON `gorm:"type:json" json:"components"`                   // [{"name":..., "weight":...}]
	DeadlineFrom int64          `json:"deadline_from"`
	DeadlineTo   int64          `json:"deadline_to"`
	RequiresPPT  bool           `gorm:"default:false" json:"requires_ppt"`
}

// SchemaComponent 评审组件定义，Components 字段的元素
type SchemaComponent struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}
