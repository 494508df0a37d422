package assign

import (
	"capstone-panel-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (a *ModuleAssign) InitRouter(r *gin.RouterGroup) {
	// 队伍分配端点以 /assign 为前缀
	assignGroup := r.Group("/assign")

	assignGroup.Use(middleware.Auth(1))
	{
		// 手动将队伍分配给答辩小组
		assignGroup.POST("", AssignProject)

		// 取消队伍的小组分配
		assignGroup.POST("/unassign", UnassignProject)

		// 自动分配所有未分配队伍
		assignGroup.POST("/auto", AutoAssign)
	}
}
