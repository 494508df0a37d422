package model

// Faculty 教师，由教务系统维护，本系统只读取并跟踪其答辩小组归属
type Faculty struct {
	Model
	EmployeeID string `gorm:"type:varchar(20);uniqueIndex;not null" json:"employee_id"` // 工号
	Name       string `gorm:"type:varchar(50);not null" json:"name"`
	School     string `gorm:"type:varchar(100);not null;index:idx_faculty_ctx" json:"school"`
	Department string `gorm:"type:varchar(100);not null;index:idx_faculty_ctx" json:"department"`
}
