package panel

import (
	"capstone-panel-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (p *ModulePanel) InitRouter(r *gin.RouterGroup) {
	// 答辩小组端点以 /panel 为前缀
	panelGroup := r.Group("/panel")

	panelGroup.Use(middleware.Auth(0))
	{
		// 某学院/系的答辩小组列表
		panelGroup.GET("/list", ListPanels)
	}

	panelGroup.Use(middleware.Auth(1))
	{
		// 手动创建答辩小组
		panelGroup.POST("/create", CreatePanel)

		// 将未分组教师自动两两分组
		panelGroup.POST("/auto-create", AutoCreatePanels)

		// 解散答辩小组，其队伍回到未分配状态
		panelGroup.DELETE("/delete/:id", RemovePanel)
	}
}
