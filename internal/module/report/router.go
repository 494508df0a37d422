package report

import (
	"capstone-panel-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (r *ModuleReport) InitRouter(rg *gin.RouterGroup) {
	// 跨学院/系成绩完成度报表端点以 /report 为前缀
	reportGroup := rg.Group("/report")

	reportGroup.Use(middleware.Auth(0))
	{
		// JSON 报表
		reportGroup.POST("/completion", Completion)

		// Excel 导出
		reportGroup.POST("/completion/export", CompletionExport)
	}
}
