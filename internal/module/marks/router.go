package marks

import (
	"capstone-panel-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleMarks) InitRouter(r *gin.RouterGroup) {
	// 成绩相关端点以 /marks 为前缀
	marksGroup := r.Group("/marks")

	marksGroup.Use(middleware.Auth(0))
	{
		// 单个队伍的录入状态
		marksGroup.GET("/project/:id", ProjectStatus)

		// 单个小组的录入汇总
		marksGroup.GET("/panel/:id", PanelSummary)
	}

	marksGroup.Use(middleware.Auth(1))
	{
		// 录入/更新某学生某次评审的成绩
		marksGroup.POST("/enter", EnterMarks)

		// 锁定某学生某次评审
		marksGroup.POST("/lock", LockReview)

		// 评审要求 PPT 时的预签名上传地址
		marksGroup.POST("/ppt-upload-url", PPTUploadURL)

		// 已上传 PPT 的预签名下载地址
		marksGroup.POST("/ppt-download-url", PPTDownloadURL)
	}
}
