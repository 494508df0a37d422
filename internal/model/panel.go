package model

// Panel 答辩小组，固定两名教师
// 创建时保证 FacultyAID < FacultyBID，无序对只有一种存储形式
type Panel struct {
	Model
	School     string `gorm:"type:varchar(100);not null;index:idx_panel_ctx" json:"school"`
	Department string `gorm:"type:varchar(100);not null;index:idx_panel_ctx" json:"department"`
	Venue      string `gorm:"type:varchar(100)" json:"venue"`
	FacultyAID uint   `gorm:"not null;index" json:"faculty_a_id"`
	FacultyBID uint   `gorm:"not null;index" json:"faculty_b_id"`

	FacultyA Faculty `gorm:"foreignKey:FacultyAID;references:ID" json:"faculty_a"`
	FacultyB Faculty `gorm:"foreignKey:FacultyBID;references:ID" json:"faculty_b"`
}

// FacultyIDs 返回小组的两名成员 ID
func (p *Panel) FacultyIDs() [2]uint {
	return [2]uint{p.FacultyAID, p.FacultyBID}
}

// HasFaculty 判断某教师是否是小组成员
func (p *Panel) HasFaculty(facultyID uint) bool {
	return facultyID == p.FacultyAID || facultyID == p.FacultyBID
}
