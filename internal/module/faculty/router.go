package faculty

import (
	"capstone-panel-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (f *ModuleFaculty) InitRouter(r *gin.RouterGroup) {
	// 教师相关端点以 /faculty 为前缀
	facultyGroup := r.Group("/faculty")

	facultyGroup.Use(middleware.Auth(0))
	{
		// 某学院/系的教师列表（带答辩小组归属）
		facultyGroup.GET("/list", ListFaculty)

		// 指导教师 -> 所带队伍 的映射
		facultyGroup.GET("/guide-projects", ListGuideProjects)
	}
}
