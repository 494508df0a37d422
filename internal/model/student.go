package model

// Student 队伍成员
type Student struct {
	Model
	ProjectID uint   `gorm:"not null;index" json:"-"`
	RegNo     string `gorm:"type:varchar(20);uniqueIndex;not null" json:"reg_no"` // 学籍号
	Name      string `gorm:"type:varchar(50);not null" json:"name"`

	Reviews []StudentReview `gorm:"foreignKey:StudentID;references:ID" json:"reviews,omitempty"`
}
