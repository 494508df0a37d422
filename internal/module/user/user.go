package user

import (
	"capstone-panel-system/internal/global/database"
	"capstone-panel-system/internal/global/jwt"
	"capstone-panel-system/internal/global/response"
	"capstone-panel-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LoginReq 定义登录请求的结构体
type LoginReq struct {
	EmployeeID string `json:"employee_id" binding:"required"` // 工号
	Password   string `json:"password" binding:"required"`
}

// Login 处理管理端登录请求
func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定登录请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var user model.User
	if err := database.DB.Where("employee_id = ?", req.EmployeeID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("账号不存在", "employee_id", req.EmployeeID)
			response.Fail(c, response.ErrNotFound.WithTips("账号不存在"))
			return
		}
		log.Error("数据库查询失败", "error", err, "employee_id", req.EmployeeID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Warn("密码错误", "employee_id", req.EmployeeID)
		response.Fail(c, response.ErrInvalidRequest.WithTips("工号或密码错误"))
		return
	}

	token, err := jwt.GenerateToken(user.ID, user.EmployeeID, user.Name, user.RoleID)
	if err != nil {
		log.Error("签发令牌失败", "error", err, "employee_id", req.EmployeeID)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	log.Info("登录成功", "employee_id", user.EmployeeID)
	response.Success(c, map[string]interface{}{
		"token":       token,
		"employee_id": user.EmployeeID,
		"name":        user.Name,
		"role_id":     user.RoleID,
	})
}

// RegisterReq 定义创建账号请求的结构体
type RegisterReq struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Password   string `json:"password" binding:"required,min=8"`
	Name       string `json:"name" binding:"required"`
	RoleID     int    `json:"role_id"`
}

// Register 创建管理端账号，仅限管理员调用
func Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定注册请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var existing model.User
	err := database.DB.Where("employee_id = ?", req.EmployeeID).First(&existing).Error
	if err == nil {
		log.Warn("账号已存在", "employee_id", req.EmployeeID)
		response.Fail(c, response.ErrAlreadyExists.WithTips("账号已存在"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("数据库查询失败", "error", err, "employee_id", req.EmployeeID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("密码加密失败", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	user := model.User{
		EmployeeID: req.EmployeeID,
		Password:   string(hashed),
		Name:       req.Name,
		RoleID:     req.RoleID,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		log.Error("创建账号失败", "error", err, "employee_id", req.EmployeeID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// 记录操作人，账号管理要能追溯到是谁建的
	operator := "unknown"
	if payload, ok := jwt.GetUserPayload(c); ok {
		operator = payload.EmployeeID
	}
	log.Info("账号创建成功", "employee_id", user.EmployeeID, "operator", operator)
	response.Success(c)
}
