package schema

import (
	"capstone-panel-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (s *ModuleSchema) InitRouter(r *gin.RouterGroup) {
	// 评分配置端点以 /schema 为前缀
	schemaGroup := r.Group("/schema")

	schemaGroup.Use(middleware.Auth(0))
	{
		// 获取某学院/系的评分配置
		schemaGroup.GET("", GetSchema)
	}

	schemaGroup.Use(middleware.Auth(1))
	{
		// 整体覆盖某学院/系的评分配置
		schemaGroup.PUT("", UpsertSchema)
	}
}
