package report

import (
	"sort"

	"capstone-panel-system/internal/model"
	"capstone-panel-system/internal/module/marks"
)

// 报表的状态过滤维度
var statusFilters = []string{
	marks.PanelStatusAll,
	marks.PanelStatusPartial,
	marks.PanelStatusNone,
}

// Context 一个学院/系
type Context struct {
	School     string `json:"school"`
	Department string `json:"department"`
}

// PanelData 报表输入：一个小组及其名下队伍（学生与成绩需已预载）
type PanelData struct {
	Panel    model.Panel
	Projects []model.Project
}

// ContextData 报表输入：一个学院/系的全部数据
type ContextData struct {
	Context
	Schema *model.MarkingSchema
	Panels []PanelData
}

// ReviewOption 评审下拉项
type ReviewOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// PanelWithSummary 小组及其全量评审汇总
type PanelWithSummary struct {
	Panel   model.Panel            `json:"panel"`
	Summary marks.PanelMarkSummary `json:"summary"`
}

// MatrixCell 报表矩阵中的一格：(评审选择 × 状态过滤) 的命中情况
type MatrixCell struct {
	Review     string `json:"review"` // all 或具名评审
	Filter     string `json:"filter"`
	PanelCount int    `json:"panel_count"`
	FacultyIDs []uint `json:"faculty_ids"` // 命中小组的去重教师
	PanelIDs   []uint `json:"panel_ids"`
}

// ContextReport 一个学院/系的报表
type ContextReport struct {
	Context
	Skipped       bool               `json:"skipped,omitempty"`
	SkipReason    string             `json:"skip_reason,omitempty"`
	ReviewOptions []ReviewOption     `json:"review_options"`
	Panels        []PanelWithSummary `json:"panels"`
	Matrix        []MatrixCell       `json:"matrix"`
}

// BuildContextReport 对一个学院/系做报表扇出
// 没有小组或没有配置时标记 skipped，调用方继续处理其余上下文
func BuildContextReport(data ContextData) ContextReport {
	report := ContextReport{Context: data.Context}

	if len(data.Panels) == 0 {
		report.Skipped = true
		report.SkipReason = "该学院/系没有答辩小组"
		return report
	}

	reviewNames := panelReviewNames(data.Schema)
	if len(reviewNames) == 0 {
		report.Skipped = true
		report.SkipReason = "该学院/系未配置小组评审"
		return report
	}

	report.ReviewOptions = append(report.ReviewOptions, ReviewOption{Value: "all", Label: "全部小组评审"})
	for _, name := range reviewNames {
		report.ReviewOptions = append(report.ReviewOptions, ReviewOption{
			Value: name,
			Label: displayName(data.Schema, name),
		})
	}

	// 全量评审汇总用于 panels 列表
	for i := range data.Panels {
		pd := &data.Panels[i]
		report.Panels = append(report.Panels, PanelWithSummary{
			Panel:   pd.Panel,
			Summary: marks.ComputePanelMarkSummary(&pd.Panel, pd.Projects, data.Schema, marks.AllPanelReviews()),
		})
	}

	// (评审选择 × 状态过滤) 矩阵
	selections := append([]string{"all"}, reviewNames...)
	for _, sel := range selections {
		summaries := make([]marks.PanelMarkSummary, 0, len(data.Panels))
		for i := range data.Panels {
			pd := &data.Panels[i]
			summaries = append(summaries,
				marks.ComputePanelMarkSummary(&pd.Panel, pd.Projects, data.Schema, marks.SingleReview(sel)))
		}
		for _, filter := range statusFilters {
			cell := MatrixCell{Review: sel, Filter: filter}
			facultySet := make(map[uint]bool)
			for i, summary := range summaries {
				if summary.Status != filter {
					continue
				}
				cell.PanelCount++
				cell.PanelIDs = append(cell.PanelIDs, data.Panels[i].Panel.ID)
				facultySet[data.Panels[i].Panel.FacultyAID] = true
				facultySet[data.Panels[i].Panel.FacultyBID] = true
			}
			for id := range facultySet {
				cell.FacultyIDs = append(cell.FacultyIDs, id)
			}
			sort.Slice(cell.FacultyIDs, func(a, b int) bool { return cell.FacultyIDs[a] < cell.FacultyIDs[b] })
			report.Matrix = append(report.Matrix, cell)
		}
	}
	return report
}

// panelReviewNames 取配置中归小组评的评审名
func panelReviewNames(schema *model.MarkingSchema) []string {
	if schema == nil {
		return nil
	}
	var names []string
	for i := range schema.Reviews {
		if schema.Reviews[i].FacultyType == model.FacultyTypePanel {
			names = append(names, schema.Reviews[i].ReviewName)
		}
	}
	return names
}

func displayName(schema *model.MarkingSchema, reviewName string) string {
	for i := range schema.Reviews {
		if schema.Reviews[i].ReviewName == reviewName && schema.Reviews[i].DisplayName != "" {
			return schema.Reviews[i].DisplayName
		}
	}
	return reviewName
}
