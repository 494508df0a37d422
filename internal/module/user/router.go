package user

import (
	"capstone-panel-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (u *ModuleUser) InitRouter(r *gin.RouterGroup) {
	// 定义用户模块的路由组，所有用户相关端点以 /user 为前缀
	userGroup := r.Group("/user")

	// 注册登录端点
	userGroup.POST("/login", Login)

	userGroup.Use(middleware.Auth(1))
	{
		// 创建账号仅限管理员
		userGroup.POST("/register", Register)
	}
}
