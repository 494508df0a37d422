package model

import "gorm.io/datatypes"

// StudentReview 某学生在某次评审下的成绩记录
// Marks 为 组件名 -> 分值 的映射，历史数据中分值可能是数字也可能是数字字符串
type StudentReview struct {
	Model
	StudentID  uint              `gorm:"not null;uniqueIndex:idx_student_review" json:"-"`
	ReviewName string            `gorm:"type:varchar(50);not null;uniqueIndex:idx_student_review" json:"review_name"`
	Marks      datatypes.JSONMap `gorm:"type:json" json:"marks"`
	Locked     bool              `gorm:"default:false" json:"locked"`
	Attendance bool              `gorm:"default:false" json:"attendance"`
	Comments   string            `gorm:"type:varchar(500)" json:"comments"`
	PPTURL     string            `gorm:"type:varchar(255)" json:"ppt_url"` // 评审要求 PPT 时的上传地址
}
