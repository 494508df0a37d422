package assign

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

// AssignReq 定义手动分配请求体
type AssignReq struct {
	PanelID   uint `json:"panel_id" binding:"required"`
	ProjectID uint `json:"project_id" binding:"required"`
}

// AssignProject 将队伍分配给答辩小组
// 重复分配到同一小组是幂等的成功；换组是移动而不是复制
func AssignProject(c *gin.Context) {
	var req AssignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定分配请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var p model.Panel
	if err := database.DB.First(&p, "id = ?", req.PanelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("小组不存在"))
			return
		}
		log.Error("查询 panel 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var project model.Project
	if err := database.DB.First(&project, "id = ?", req.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("队伍不存在"))
			return
		}
		log.Error("查询 project 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if allowed, reason := CanAssign(project.GuideID, guideName(project.GuideID), p.FacultyIDs()); !allowed {
		log.Warn("分配冲突", "project_id", project.ID, "panel_id", p.ID, "reason", reason)
		response.Fail(c, response.ErrGuideConflict.WithTips(reason))
		return
	}

	// 已在该小组则无需改动
	if project.PanelID != nil && *project.PanelID == p.ID {
		response.Success(c, project)
		return
	}

	if err := database.DB.Model(&project).Update("panel_id", p.ID).Error; err != nil {
		log.Error("分配写入失败", "error", err, "project_id", project.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("队伍分配成功", "project_id", project.ID, "panel_id", p.ID)
	response.Success(c, project)
}

// UnassignReq 定义取消分配请求体
type UnassignReq struct {
	ProjectID uint `json:"project_id" binding:"required"`
}

// UnassignProject 取消队伍的小组分配
// 解除绑定不需要冲突检查，只要队伍存在就成功
func UnassignProject(c *gin.Context) {
	var req UnassignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定取消分配请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var project model.Project
	if err := database.DB.First(&project, "id = ?", req.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("队伍不存在"))
			return
		}
		log.Error("查询 project 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := database.DB.Model(&project).Update("panel_id", nil).Error; err != nil {
		log.Error("取消分配写入失败", "error", err, "project_id", project.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("队伍已取消分配", "project_id", project.ID)
	response.Success(c)
}

// AutoAssignReq 定义自动分配请求体
type AutoAssignReq struct {
	School     string `json:"school" binding:"required"`
	Department string `json:"department" binding:"required"`
}

// SkippedProject 自动分配中被跳过的队伍及原因
type SkippedProject struct {
	ProjectID uint   `json:"project_id"`
	Name      string `json:"name"`
	Reason    string `json:"reason"`
}

// AutoAssignResult 自动分配结果
type AutoAssignResult struct {
	Assigned []model.Project  `json:"assigned"`
	Skipped  []SkippedProject `json:"skipped"`
}

// AutoAssign 自动分配所有未分配队伍
// 贪心且确定：队伍按 ID 升序、小组按 ID 升序，取第一个无冲突的小组；
// 某队伍无小组可分只记入 skipped，不中断整批；已分配队伍不被触碰。
// 与自动分组共用同一把锁，二者互斥。
func AutoAssign(c *gin.Context) {
	var req AutoAssignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定自动分配请求失败", "error", err)
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
		Order("id ASC").Find(&panels).Error; err != nil {
		log.Error("查询 panel 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var candidates []model.Project
	if err := database.DB.Preload("Guide").
		Where("school = ? AND department = ? AND panel_id IS NULL", req.School, req.Department).
		Order("id ASC").Find(&candidates).Error; err != nil {
		log.Error("查询 project 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	result := AutoAssignResult{
		Assigned: make([]model.Project, 0, len(candidates)),
		Skipped:  make([]SkippedProject, 0),
	}

	for _, project := range candidates {
		target, reason := pickPanel(&project, panels)
		if target == nil {
			result.Skipped = append(result.Skipped, SkippedProject{
				ProjectID: project.ID,
				Name:      project.Name,
				Reason:    reason,
			})
			continue
		}
		if err := database.DB.Model(&project).Update("panel_id", target.ID).Error; err != nil {
			// 单个队伍写入失败不阻塞整批
			log.Error("自动分配写入失败", "error", err, "project_id", project.ID)
			result.Skipped = append(result.Skipped, SkippedProject{
				ProjectID: project.ID,
				Name:      project.Name,
				Reason:    "数据库写入失败",
			})
			continue
		}
		id := target.ID
		project.PanelID = &id
		result.Assigned = append(result.Assigned, project)
	}

	log.Info("自动分配完成",
		"school", req.School,
		"department", req.Department,
		"assigned", len(result.Assigned),
		"skipped", len(result.Skipped),
	)
	notify.Push("assign.auto", req.School, req.Department, result)
	response.Success(c, result)
}

// pickPanel 为队伍挑选第一个无冲突的小组，全部冲突时给出原因
func pickPanel(project *model.Project, panels []model.Panel) (*model.Panel, string) {
	if len(panels) == 0 {
		return nil, "该学院/系还没有答辩小组"
	}
	for i := range panels {
		if allowed, _ := CanAssign(project.GuideID, project.Guide.Name, panels[i].FacultyIDs()); allowed {
			return &panels[i], ""
		}
	}
	return nil, "没有可用小组（指导教师与所有小组冲突）"
}

// guideName 查指导教师姓名，仅用于冲突提示
func guideName(guideID uint) string {
	if guideID == 0 {
		return ""
	}
	var f model.Faculty
	if err := database.DB.Select("name").First(&f, "id = ?", guideID).Error; err != nil {
		return ""
	}
	return f.Name
}
