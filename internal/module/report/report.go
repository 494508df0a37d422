package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"capstone-panel-system/internal/global/database"
	"capstone-panel-system/internal/global/response"
	"capstone-panel-system/internal/model"
	"capstone-panel-system/internal/module/marks"
	"capstone-panel-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// CompletionReq 定义报表请求体，contexts 为空时覆盖所有已有小组的学院/系
type CompletionReq struct {
	Contexts []Context `json:"contexts"`
}

// CompletionResp 报表响应
type CompletionResp struct {
	Contexts []Context       `json:"contexts"`
	Reports  []ContextReport `json:"reports"`
}

// Completion 跨学院/系成绩完成度报表
// 某个上下文缺小组或缺配置时跳过并继续，绝不让一个上下文拖垮整份报表
func Completion(c *gin.Context) {
	resp, failure := buildCompletion(c)
	if failure != nil {
		response.Fail(c, failure)
		return
	}
	response.Success(c, resp)
}

// completionRow Excel 导出行
type completionRow struct {
	School     string `excel:"学院"`
	Department string `excel:"系"`
	Review     string `excel:"评审"`
	Filter     string `excel:"状态"`
	PanelCount int    `excel:"命中小组数"`
	Faculty    int    `excel:"涉及教师数"`
	PanelIDs   string `excel:"小组ID"`
}

// CompletionExport 报表导出为 Excel
func CompletionExport(c *gin.Context) {
	resp, failure := buildCompletion(c)
	if failure != nil {
		response.Fail(c, failure)
		return
	}

	var rows []completionRow
	for _, report := range resp.Reports {
		if report.Skipped {
			rows = append(rows, completionRow{
				School:     report.School,
				Department: report.Department,
				Review:     "-",
				Filter:     report.SkipReason,
			})
			continue
		}
		for _, cell := range report.Matrix {
			ids := make([]string, 0, len(cell.PanelIDs))
			for _, id := range cell.PanelIDs {
				ids = append(ids, fmt.Sprintf("%d", id))
			}
			rows = append(rows, completionRow{
				School:     report.School,
				Department: report.Department,
				Review:     cell.Review,
				Filter:     cell.Filter,
				PanelCount: cell.PanelCount,
				Faculty:    len(cell.FacultyIDs),
				PanelIDs:   strings.Join(ids, ","),
			})
		}
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := tools.ExportToExcel(f, "完成度报表", rows); err != nil {
		log.Error("写入 Excel 失败", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	filename := fmt.Sprintf("completion-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Type", tools.ExcelContentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := f.Write(c.Writer); err != nil {
		log.Error("发送 Excel 失败", "error", err)
	}
}

func buildCompletion(c *gin.Context) (*CompletionResp, *response.Error) {
	var req CompletionReq
	// 空请求体等价于全部上下文，格式坏掉的请求体必须报错而不是静默全量
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Error("绑定报表请求失败", "error", err)
		return nil, response.ErrInvalidRequest.WithOrigin(err)
	}

	contexts := req.Contexts
	if len(contexts) == 0 {
		var err error
		contexts, err = discoverContexts()
		if err != nil {
			log.Error("查询 panel 表错误", "error", err)
			return nil, response.ErrDatabase.WithOrigin(err)
		}
	}

	cache := marks.NewSchemaCache()
	resp := &CompletionResp{Contexts: contexts}
	for _, ctx := range contexts {
		data, err := fetchContextData(ctx, cache)
		if err != nil {
			// 单个上下文读取失败跳过并继续
			log.Warn("读取上下文数据失败，已跳过", "school", ctx.School, "department", ctx.Department, "error", err)
			resp.Reports = append(resp.Reports, ContextReport{
				Context:    ctx,
				Skipped:    true,
				SkipReason: "读取数据失败",
			})
			continue
		}
		resp.Reports = append(resp.Reports, BuildContextReport(*data))
	}
	return resp, nil
}

// discoverContexts 从已有小组推导全部 (school, department) 上下文
func discoverContexts() ([]Context, error) {
	var contexts []Context
	err := database.DB.Model(&model.Panel{}).
		Distinct("school", "department").
		Order("school ASC, department ASC").
		Find(&contexts).Error
	return contexts, err
}

func fetchContextData(ctx Context, cache *marks.SchemaCache) (*ContextData, error) {
	schema, err := cache.Get(ctx.School, ctx.Department)
	if err != nil {
		return nil, err
	}

	var panels []model.Panel
	if err := database.DB.Preload("FacultyA").Preload("FacultyB").
		Where("school = ? AND department = ?", ctx.School, ctx.Department).
		Order("id ASC").Find(&panels).Error; err != nil {
		return nil, err
	}

	var projects []model.Project
	if err := database.DB.Preload("Students.Reviews").
		Where("school = ? AND department = ? AND panel_id IS NOT NULL", ctx.School, ctx.Department).
		Order("id ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	byPanel := make(map[uint][]model.Project)
	for _, p := range projects {
		byPanel[*p.PanelID] = append(byPanel[*p.PanelID], p)
	}

	data := &ContextData{Context: ctx, Schema: schema}
	for _, p := range panels {
		data.Panels = append(data.Panels, PanelData{Panel: p, Projects: byPanel[p.ID]})
	}
	return data, nil
}
