package faculty

import (
	"capstone-panel-system/internal/global/database"
	"capstone-panel-system/internal/global/response"
	"capstone-panel-system/internal/model"

	"github.com/gin-gonic/gin"
)

// ListFacultyReq 定义教师列表查询参数
type ListFacultyReq struct {
	School     string `form:"school" binding:"required"`
	Department string `form:"department" binding:"required"`
}

// FacultyItem 教师列表项，附带答辩小组归属
type FacultyItem struct {
	model.Faculty
	PanelID *uint `json:"panel_id"` // 为空表示尚未加入任何答辩小组
}

// ListFaculty 获取某学院/系的教师列表（带答辩小组归属标注）
func ListFaculty(c *gin.Context) {
	var req ListFacultyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		log.Error("绑定教师列表请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
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

	var panels []model.Panel
	if err := database.DB.
		Where("school = ? AND department = ?", req.School, req.Department).
		Find(&panels).Error; err != nil {
		log.Error("查询 panel 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// 教师ID -> 小组ID
	membership := make(map[uint]uint, len(panels)*2)
	for _, p := range panels {
		membership[p.FacultyAID] = p.ID
		membership[p.FacultyBID] = p.ID
	}

	result := make([]FacultyItem, 0, len(faculties))
	for _, f := range faculties {
		item := FacultyItem{Faculty: f}
		if panelID, ok := membership[f.ID]; ok {
			id := panelID
			item.PanelID = &id
		}
		result = append(result, item)
	}

	response.Success(c, result)
}

// GuideProjectsItem 指导教师及其所带队伍
type GuideProjectsItem struct {
	Faculty        model.Faculty   `json:"faculty"`
	GuidedProjects []model.Project `json:"guided_projects"`
}

// ListGuideProjects 获取某学院/系 指导教师 -> 所带队伍 的映射
// 冲突判定读取的就是这份指导关系
func ListGuideProjects(c *gin.Context) {
	var req ListFacultyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		log.Error("绑定指导关系请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var projects []model.Project
	if err := database.DB.
		Where("school = ? AND department = ? AND guide_id > 0", req.School, req.Department).
		Order("id ASC").Find(&projects).Error; err != nil {
		log.Error("查询 project 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	byGuide := make(map[uint][]model.Project)
	for _, p := range projects {
		byGuide[p.GuideID] = append(byGuide[p.GuideID], p)
	}

	guideIDs := make([]uint, 0, len(byGuide))
	for id := range byGuide {
		guideIDs = append(guideIDs, id)
	}

	var guides []model.Faculty
	if len(guideIDs) > 0 {
		if err := database.DB.Where("id IN ?", guideIDs).Order("id ASC").Find(&guides).Error; err != nil {
			log.Error("查询 faculty 表错误", "error", err)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
	}

	result := make([]GuideProjectsItem, 0, len(guides))
	for _, g := range guides {
		result = append(result, GuideProjectsItem{
			Faculty:        g,
			GuidedProjects: byGuide[g.ID],
		})
	}

	response.Success(c, result)
}
