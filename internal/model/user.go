package model

// User 管理端登录账号（教务/系管理员）
type User struct {
	Model
	EmployeeID string `gorm:"type:varchar(20);uniqueIndex;not null" json:"employee_id"`
	Password   string `gorm:"type:varchar(255);not null" json:"-"`
	RoleID     int    `gorm:"default:0;not null" json:"role_id"` // 0 普通查询账号，1 管理员
	Name       string `gorm:"type:varchar(50);not null" json:"name"`
}
