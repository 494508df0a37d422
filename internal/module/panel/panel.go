package panel

import (
	"capstone-panel-system/internal/global/database"
	"capstone-panel-system/internal/global/locker"
	"capstone-panel-system/internal/global/notify"
	"capstone-panel-system/internal/global/response"
	"capstone-panel-system/internal/global/sentry/tracing"
	"capstone-panel-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreatePanelReq 定义手动创建答辩小组的请求体
type CreatePanelReq struct {
	School     string `json:"school" binding:"required"`
	Department string `json:"department" binding:"required"`
	FacultyA   uint   `json:"faculty_a" binding:"required"`
	FacultyB   uint   `json:"faculty_b" binding:"required"`
	Venue      string `json:"venue"`
}

// CreatePanel 手动创建答辩小组
// 两名教师必须互不相同、都属于该学院/系、且尚未加入其他小组
func CreatePanel(c *gin.Context) {
	var req CreatePanelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建小组请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if req.FacultyA == req.FacultyB {
		response.Fail(c, response.ErrInvalidRequest.WithTips("不能选择同一名教师两次"))
		return
	}
	a, b := NormalizePair(req.FacultyA, req.FacultyB)

	// 两名教师都必须存在于该学院/系
	var members []model.Faculty
	if err := database.DB.
		Where("id IN ? AND school = ? AND department = ?", []uint{a, b}, req.School, req.Department).
		Find(&members).Error; err != nil {
		log.Error("查询 faculty 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if len(members) != 2 {
		response.Fail(c, response.ErrInvalidRequest.WithTips("所选教师不存在或不属于该学院/系"))
		return
	}

	// 重复组合与教师占用都对照该学院/系的现有小组判断
	var existing []model.Panel
	if err := database.DB.
		Where("school = ? AND department = ?", req.School, req.Department).
		Find(&existing).Error; err != nil {
		log.Error("查询 panel 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if conflict := classifyPairConflict(existing, a, b); conflict != nil {
		log.Warn("教师组合不可用", "faculty_a", a, "faculty_b", b, "reason", conflict.Message)
		response.Fail(c, conflict)
		return
	}

	p := model.Panel{
		School:     req.School,
		Department: req.Department,
		Venue:      req.Venue,
		FacultyAID: a,
		FacultyBID: b,
	}
	if err := database.DB.Create(&p).Error; err != nil {
		log.Error("创建小组失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("答辩小组创建成功", "panel_id", p.ID, "faculty_a", a, "faculty_b", b)
	response.Success(c, p)
}

// AutoCreateReq 定义自动分组请求体
type AutoCreateReq struct {
	School     string `json:"school" binding:"required"`
	Department string `json:"department" binding:"required"`
	// ForceAdditional 已存在小组时是否仍然继续为剩余教师分组
	ForceAdditional bool `json:"force_additional"`
}

// AutoCreateResult 自动分组结果
type AutoCreateResult struct {
	Created []model.Panel `json:"created"`
	// Unpaired 落单教师（奇数人数时），为空表示全部配对成功
	Unpaired *model.Faculty `json:"unpaired,omitempty"`
	// RequiresConfirmation 已有小组且未加 force_additional 时要求二次确认
	RequiresConfirmation bool `json:"requires_confirmation,omitempty"`
}

// AutoCreatePanels 将尚未入组的教师按 ID 升序两两分组
// 只处理剩余未入组教师，绝不重排已有小组；与自动分配互斥
func AutoCreatePanels(c *gin.Context) {
	var req AutoCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定自动分组请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	ctx := tracing.ContextWithSpan(c)
	key := locker.ContextKey(req.School, req.Department)
	token, ok, err := locker.TryLock(ctx, key, locker.DefaultTTL)
	if err != nil {
		log.Error("获取批量操作锁失败", "error", err, "key", key)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	if !ok {
		response.Fail(c, response.ErrOperationInProgress)
		return
	}
	defer func() {
		if err := locker.Unlock(ctx, key, token); err != nil {
			log.Warn("释放批量操作锁失败", "error", err, "key", key)
		}
	}()

	var panels []model.Panel
	if err := database.DB.
		Where("school = ? AND department = ?", req.School, req.Department).
		Find(&panels).Error; err != nil {
		log.Error("查询 panel 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if len(panels) > 0 && !req.ForceAdditional {
		// 已有分组时要求调用方确认，避免误触
		response.Success(c, AutoCreateResult{RequiresConfirmation: true})
		return
	}

	var faculties []model.Faculty
	if err := database.DB.
		Where("school = ? AND department = ?", req.School, req.Department).
		Order("id ASC").Find(&faculties).Error; err != nil {
		log.Error("查询 faculty 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	inPanel := make(map[uint]bool, len(panels)*2)
	for _, p := range panels {
		inPanel[p.FacultyAID] = true
		inPanel[p.FacultyBID] = true
	}

	pool := make([]uint, 0, len(faculties))
	byID := make(map[uint]model.Faculty, len(faculties))
	for _, f := range faculties {
		byID[f.ID] = f
		if !inPanel[f.ID] {
			pool = append(pool, f.ID)
		}
	}

	pairs, unpairedID, hasUnpaired := PairFaculty(pool)

	result := AutoCreateResult{Created: make([]model.Panel, 0, len(pairs))}
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		for _, pair := range pairs {
			p := model.Panel{
				School:     req.School,
				Department: req.Department,
				FacultyAID: pair[0],
				FacultyBID: pair[1],
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
			result.Created = append(result.Created, p)
		}
		return nil
	})
	if err != nil {
		log.Error("自动分组写入失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if hasUnpaired {
		if f, ok := byID[unpairedID]; ok {
			result.Unpaired = &f
		}
	}

	log.Info("自动分组完成",
		"school", req.School,
		"department", req.Department,
		"created", len(result.Created),
		"unpaired", hasUnpaired,
	)
	notify.Push("panel.auto_create", req.School, req.Department, result)
	response.Success(c, result)
}

// RemovePanel 解散答辩小组
// 小组名下的队伍回到未分配状态，队伍本身不会被删除
func RemovePanel(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("小组ID不能为空"))
		return
	}

	var p model.Panel
	if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("小组不存在"))
			return
		}
		log.Error("查询 panel 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var released int64
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		r := tx.Model(&model.Project{}).
			Where("panel_id = ?", p.ID).
			Update("panel_id", nil)
		if r.Error != nil {
			return r.Error
		}
		released = r.RowsAffected
		return tx.Delete(&p).Error
	})
	if err != nil {
		log.Error("解散小组失败", "error", err, "panel_id", p.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("答辩小组已解散", "panel_id", p.ID, "released_projects", released)
	response.Success(c, map[string]interface{}{
		"panel_id":          p.ID,
		"released_projects": released,
	})
}

// ListPanelsReq 定义小组列表查询参数
type ListPanelsReq struct {
	School     string `form:"school" binding:"required"`
	Department string `form:"department" binding:"required"`
}

// PanelItem 小组列表项
type PanelItem struct {
	model.Panel
	ProjectCount int64 `json:"project_count"`
}

// ListPanels 获取某学院/系的答辩小组列表（带已分配队伍数量）
func ListPanels(c *gin.Context) {
	var req ListPanelsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		log.Error("绑定小组列表请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var panels []model.Panel
	if err := database.DB.Preload("FacultyA").Preload("FacultyB").
		Where("school = ? AND department = ?", req.School, req.Department).
		Order("id ASC").Find(&panels).Error; err != nil {
		log.Error("查询 panel 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	type countRow struct {
		PanelID uint
		Cnt     int64
	}
	var counts []countRow
	if err := database.DB.Model(&model.Project{}).
		Select("panel_id AS panel_id, COUNT(*) AS cnt").
		Where("school = ? AND department = ? AND panel_id IS NOT NULL", req.School, req.Department).
		Group("panel_id").Scan(&counts).Error; err != nil {
		log.Error("查询 project 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	countByPanel := make(map[uint]int64, len(counts))
	for _, row := range counts {
		countByPanel[row.PanelID] = row.Cnt
	}

	result := make([]PanelItem, 0, len(panels))
	for _, p := range panels {
		result = append(result, PanelItem{Panel: p, ProjectCount: countByPanel[p.ID]})
	}

	response.Success(c, result)
}
