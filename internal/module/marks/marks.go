package marks

import (
	"capstone-panel-system/internal/global/database"
	"capstone-panel-system/internal/global/response"
	"capstone-panel-system/internal/global/sentry/tracing"
	"capstone-panel-system/internal/global/storage"
	"capstone-panel-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectStatus 获取单个队伍在所选评审下的成绩录入状态
// review 查询参数缺省或为 all 时统计全部小组评审
func ProjectStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("队伍ID不能为空"))
		return
	}

	var project model.Project
	if err := database.DB.Preload("Students.Reviews").
		First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("队伍不存在"))
			return
		}
		log.Error("查询 project 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var panel *model.Panel
	if project.PanelID != nil {
		var p model.Panel
		if err := database.DB.First(&p, "id = ?", *project.PanelID).Error; err == nil {
			panel = &p
		}
	}

	school, department := resolveContext(&project, panel)
	schema, err := NewSchemaCache().Get(school, department)
	if err != nil {
		log.Error("查询 marking_schema 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	status := ComputeProjectMarkStatus(&project, panel, schema, SingleReview(c.Query("review")))
	response.Success(c, status)
}

// PanelSummary 获取单个小组名下所有队伍的录入汇总
func PanelSummary(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("小组ID不能为空"))
		return
	}

	var panel model.Panel
	if err := database.DB.First(&panel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("小组不存在"))
			return
		}
		log.Error("查询 panel 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var projects []model.Project
	if err := database.DB.Preload("Students.Reviews").
		Where("panel_id = ?", panel.ID).
		Order("id ASC").Find(&projects).Error; err != nil {
		log.Error("查询 project 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	schema, err := NewSchemaCache().Get(panel.School, panel.Department)
	if err != nil {
		log.Error("查询 marking_schema 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	summary := ComputePanelMarkSummary(&panel, projects, schema, SingleReview(c.Query("review")))
	response.Success(c, summary)
}

// EnterMarksReq 定义成绩录入请求体
type EnterMarksReq struct {
	RegNo      string                 `json:"reg_no" binding:"required"`
	ReviewName string                 `json:"review_name" binding:"required"`
	Marks      map[string]interface{} `json:"marks" binding:"required"`
	Attendance *bool                  `json:"attendance"`
	Comments   string                 `json:"comments"`
	PPTURL     string                 `json:"ppt_url"`
}

// EnterMarks 录入或更新某学生某次评审的成绩
// 评审名必须在该队伍所属学院/系的评分配置中定义；已锁定的评审拒绝修改
func EnterMarks(c *gin.Context) {
	var req EnterMarksReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定成绩录入请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var student model.Student
	if err := database.DB.First(&student, "reg_no = ?", req.RegNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("学生不存在"))
			return
		}
		log.Error("查询 student 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var project model.Project
	if err := database.DB.First(&project, "id = ?", student.ProjectID).Error; err != nil {
		log.Error("查询 project 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	schema, err := NewSchemaCache().Get(project.School, project.Department)
	if err != nil {
		log.Error("查询 marking_schema 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if schema == nil {
		response.Fail(c, response.ErrNotFound.WithTips("该学院/系未配置评分方案"))
		return
	}
	defined := false
	for i := range schema.Reviews {
		if schema.Reviews[i].ReviewName == req.ReviewName {
			defined = true
			break
		}
	}
	if !defined {
		response.Fail(c, response.ErrInvalidRequest.WithTips("评分方案中没有该评审"))
		return
	}

	var review model.StudentReview
	err = database.DB.
		Where("student_id = ? AND review_name = ?", student.ID, req.ReviewName).
		First(&review).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("查询 student_review 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if err == nil && review.Locked {
		response.Fail(c, response.ErrReviewLocked)
		return
	}

	review.StudentID = student.ID
	review.ReviewName = req.ReviewName
	review.Marks = datatypes.JSONMap(req.Marks)
	if req.Attendance != nil {
		review.Attendance = *req.Attendance
	}
	if req.Comments != "" {
		review.Comments = req.Comments
	}
	if req.PPTURL != "" {
		review.PPTURL = req.PPTURL
	}
	if err := database.DB.WithContext(tracing.ContextWithSpan(c)).Save(&review).Error; err != nil {
		log.Error("保存成绩失败", "error", err, "reg_no", req.RegNo, "review", req.ReviewName)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("成绩已录入", "reg_no", req.RegNo, "review", req.ReviewName)
	response.Success(c, review)
}

// LockReviewReq 定义锁定评审请求体
type LockReviewReq struct {
	RegNo      string `json:"reg_no" binding:"required"`
	ReviewName string `json:"review_name" binding:"required"`
}

// LockReview 锁定某学生的某次评审，锁定后成绩不可再修改
func LockReview(c *gin.Context) {
	var req LockReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定锁定请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var student model.Student
	if err := database.DB.First(&student, "reg_no = ?", req.RegNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("学生不存在"))
			return
		}
		log.Error("查询 student 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	r := database.DB.Model(&model.StudentReview{}).
		Where("student_id = ? AND review_name = ?", student.ID, req.ReviewName).
		Update("locked", true)
	if r.Error != nil {
		log.Error("锁定评审失败", "error", r.Error)
		response.Fail(c, response.ErrDatabase.WithOrigin(r.Error))
		return
	}
	if r.RowsAffected == 0 {
		response.Fail(c, response.ErrNotFound.WithTips("该学生还没有这次评审的成绩记录"))
		return
	}

	log.Info("评审已锁定", "reg_no", req.RegNo, "review", req.ReviewName)
	response.Success(c)
}

// PPTUploadURLReq 定义 PPT 预签名上传请求体
type PPTUploadURLReq struct {
	School      string `json:"school" binding:"required"`
	Department  string `json:"department" binding:"required"`
	ReviewName  string `json:"review_name" binding:"required"`
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type"`
}

// PPTUploadURL 为要求 PPT 的评审生成预签名直传地址
func PPTUploadURL(c *gin.Context) {
	var req PPTUploadURLReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定 PPT 上传请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	schema, err := NewSchemaCache().Get(req.School, req.Department)
	if err != nil {
		log.Error("查询 marking_schema 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if schema == nil {
		response.Fail(c, response.ErrNotFound.WithTips("该学院/系未配置评分方案"))
		return
	}

	requires := false
	for i := range schema.Reviews {
		if schema.Reviews[i].ReviewName == req.ReviewName {
			requires = schema.Reviews[i].RequiresPPT
			break
		}
	}
	if !requires {
		response.Fail(c, response.ErrInvalidRequest.WithTips("该评审不要求上传 PPT"))
		return
	}

	result, err := storage.Get().GeneratePresignedUploadURL(tracing.ContextWithSpan(c), storage.PresignedUploadRequest{
		Filename:    req.Filename,
		ContentType: req.ContentType,
	})
	if err != nil {
		log.Error("生成预签名上传地址失败", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	response.Success(c, result)
}

// PPTDownloadURLReq 定义 PPT 预签名下载请求体
type PPTDownloadURLReq struct {
	FileKey string `json:"file_key" binding:"required"`
}

// PPTDownloadURL 为已上传的 PPT 生成预签名下载地址
func PPTDownloadURL(c *gin.Context) {
	var req PPTDownloadURLReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定 PPT 下载请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	url, err := storage.Get().GeneratePresignedDownloadURL(tracing.ContextWithSpan(c), req.FileKey, 0)
	if err != nil {
		log.Error("生成预签名下载地址失败", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	response.Success(c, map[string]string{"download_url": url})
}
