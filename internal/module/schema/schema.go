package schema

import (
	"encoding/json"

	"capstone-panel-system/internal/global/database"
	"capstone-panel-system/internal/global/response"
	"capstone-panel-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GetSchemaReq 定义查询评分配置的参数
type GetSchemaReq struct {
	School     string `form:"school" binding:"required"`
	Department string `form:"department" binding:"required"`
}

// GetSchema 获取某学院/系的评分配置，未配置时返回 404
func GetSchema(c *gin.Context) {
	var req GetSchemaReq
	if err := c.ShouldBindQuery(&req); err != nil {
		log.Error("绑定评分配置请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var schema model.MarkingSchema
	err := database.DB.Preload("Reviews").
		Where("school = ? AND department = ?", req.School, req.Department).
		First(&schema).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("该学院/系未配置评分方案"))
			return
		}
		log.Error("查询 marking_schema 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, schema)
}

// ReviewDef 评分配置中的一项评审
type ReviewDef struct {
	ReviewName   string                  `json:"review_name" binding:"required"`
	DisplayName  string                  `json:"display_name"`
	FacultyType  string                  `json:"faculty_type" binding:"required,oneof=guide panel"`
	Components   []model.SchemaComponent `json:"components" binding:"required,min=1"`
	DeadlineFrom int64                   `json:"deadline_from"`
	DeadlineTo   int64                   `json:"deadline_to"`
	RequiresPPT  bool                    `json:"requires_ppt"`
}

// UpsertSchemaReq 定义覆盖评分配置的请求体
type UpsertSchemaReq struct {
	School     string      `json:"school" binding:"required"`
	Department string      `json:"department" binding:"required"`
	Reviews    []ReviewDef `json:"reviews" binding:"required,min=1"`
}

// UpsertSchema 整体覆盖某学院/系的评分配置
// 配置是管理员离线维护的稳定数据，分配与统计期间不会被并发修改
func UpsertSchema(c *gin.Context) {
	var req UpsertSchemaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定评分配置失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var schema model.MarkingSchema
		err := tx.Where("school = ? AND department = ?", req.School, req.Department).
			First(&schema).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			schema = model.MarkingSchema{School: req.School, Department: req.Department}
			if err := tx.Create(&schema).Error; err != nil {
				return err
			}
		} else {
			// 覆盖式更新：旧的评审定义全部删除
			if err := tx.Where("schema_id = ?", schema.ID).
				Delete(&model.SchemaReview{}).Error; err != nil {
				return err
			}
		}

		for _, def := range req.Reviews {
			components, err := json.Marshal(def.Components)
			if err != nil {
				return err
			}
			review := model.SchemaReview{
				SchemaID:     schema.ID,
				ReviewName:   def.ReviewName,
				DisplayName:  def.DisplayName,
				FacultyType:  def.FacultyType,
				Components:   datatypes.JSON(components),
				DeadlineFrom: def.DeadlineFrom,
				DeadlineTo:   def.DeadlineTo,
				RequiresPPT:  def.RequiresPPT,
			}
			if err := tx.Create(&review).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("保存评分配置失败", "error", err, "school", req.School, "department", req.Department)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("评分配置已更新", "school", req.School, "department", req.Department, "reviews", len(req.Reviews))
	response.Success(c)
}
