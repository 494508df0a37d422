package marks

import (
	"strconv"

	"capstone-panel-system/internal/model"
)

// 项目级成绩录入状态
const (
	StatusNoSchema = "no-schema" // 该学院/系未配置评分方案，无法判定
	StatusNoReview = "no-review" // 指定的评审不在小组评审之列
	StatusNone     = "none"      // 没有任何学生有成绩
	StatusPartial  = "partial"   // 部分学生有成绩
	StatusFull     = "full"      // 所有学生所有选中评审都已录入
)

// 小组级汇总状态
const (
	PanelStatusNoProjects = "no-projects"
	PanelStatusAll        = "all"
	PanelStatusPartial    = "partial"
	PanelStatusNone       = "none"
)

// ReviewSelection 评审选择：全部小组评审，或某一个具名评审
type ReviewSelection struct {
	All  bool
	Name string
}

// AllPanelReviews 选择全部小组评审
func AllPanelReviews() ReviewSelection {
	return ReviewSelection{All: true}
}

// SingleReview 选择一个具名评审
func SingleReview(name string) ReviewSelection {
	if name == "" || name == "all" {
		return AllPanelReviews()
	}
	return ReviewSelection{Name: name}
}

// StudentMarkStatus 单个学生在所选评审下的录入情况
type StudentMarkStatus struct {
	RegNo         string   `json:"reg_no"`
	Name          string   `json:"name"`
	MarkedReviews []string `json:"marked_reviews"`
	FullyMarked   bool     `json:"fully_marked"`
}

// ProjectMarkStatus 单个队伍在所选评审下的录入情况
type ProjectMarkStatus struct {
	ProjectID           uint                `json:"project_id"`
	ProjectName         string              `json:"project_name"`
	Status              string              `json:"status"`
	TotalStudents       int                 `json:"total_students"`
	StudentsWithMarks   int                 `json:"students_with_marks"`
	StudentsFullyMarked int                 `json:"students_fully_marked"`
	Students            []StudentMarkStatus `json:"students,omitempty"`
}

// PanelMarkSummary 答辩小组的成绩录入汇总
type PanelMarkSummary struct {
	PanelID             uint                `json:"panel_id"`
	Status              string              `json:"status"`
	TotalProjects       int                 `json:"total_projects"`
	FullyMarkedProjects int                 `json:"fully_marked_projects"`
	MarkedProjects      int                 `json:"marked_projects"` // 有任意成绩的队伍数，含已录全的
	PartialProjects     int                 `json:"partial_projects"`
	UnmarkedProjects    int                 `json:"unmarked_projects"`
	Projects            []ProjectMarkStatus `json:"projects,omitempty"`
}

// markIsPositive 判断单个分值是否计为"已录入"
// 历史数据里分值可能是数字或数字字符串；只有正数才算，
// 零分、负数、非数字、缺失都不算——这是刻意的下限，不是"非空即可"
func markIsPositive(v interface{}) bool {
	switch n := v.(type) {
	case float64:
		return n > 0
	case float32:
		return n > 0
	case int:
		return n > 0
	case int64:
		return n > 0
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return err == nil && f > 0
	default:
		return false
	}
}

// reviewIsMarked 学生的某次评审只要有任意一个组件为正分即算已录入
func reviewIsMarked(student *model.Student, reviewName string) bool {
	for i := range student.Reviews {
		if student.Reviews[i].ReviewName != reviewName {
			continue
		}
		for _, v := range student.Reviews[i].Marks {
			if markIsPositive(v) {
				return true
			}
		}
		return false
	}
	return false
}

// panelReviewNames 过滤出配置中归小组评的评审名
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

// resolveContext 队伍自带学院/系时用自己的，否则退回小组的
func resolveContext(project *model.Project, panel *model.Panel) (school, department string) {
	school, department = project.School, project.Department
	if (school == "" || department == "") && panel != nil {
		school, department = panel.School, panel.Department
	}
	return
}

// ComputeProjectMarkStatus 计算单个队伍在所选评审下的录入状态
// schema 为 nil 或没有任何小组评审时返回 no-schema；
// 指定的评审不在小组评审之列时返回 no-review
func ComputeProjectMarkStatus(project *model.Project, panel *model.Panel, schema *model.MarkingSchema, sel ReviewSelection) ProjectMarkStatus {
	result := ProjectMarkStatus{
		ProjectID:   project.ID,
		ProjectName: project.Name,
	}

	names := panelReviewNames(schema)
	if len(names) == 0 {
		result.Status = StatusNoSchema
		return result
	}

	selected := names
	if !sel.All {
		found := false
		for _, n := range names {
			if n == sel.Name {
				found = true
				break
			}
		}
		if !found {
			result.Status = StatusNoReview
			return result
		}
		selected = []string{sel.Name}
	}

	result.TotalStudents = len(project.Students)
	for i := range project.Students {
		s := &project.Students[i]
		status := StudentMarkStatus{RegNo: s.RegNo, Name: s.Name}
		for _, name := range selected {
			if reviewIsMarked(s, name) {
				status.MarkedReviews = append(status.MarkedReviews, name)
			}
		}
		status.FullyMarked = len(status.MarkedReviews) == len(selected)
		if len(status.MarkedReviews) > 0 {
			result.StudentsWithMarks++
		}
		if status.FullyMarked {
			result.StudentsFullyMarked++
		}
		result.Students = append(result.Students, status)
	}

	switch {
	case result.TotalStudents > 0 && result.StudentsFullyMarked == result.TotalStudents:
		result.Status = StatusFull
	case result.StudentsWithMarks > 0:
		result.Status = StatusPartial
	default:
		// 没有学生的队伍也归入 none
		result.Status = StatusNone
	}
	return result
}

// ComputePanelMarkSummary 把小组名下所有队伍的状态汇总成小组状态
func ComputePanelMarkSummary(panel *model.Panel, projects []model.Project, schema *model.MarkingSchema, sel ReviewSelection) PanelMarkSummary {
	summary := PanelMarkSummary{
		PanelID:       panel.ID,
		TotalProjects: len(projects),
	}
	if len(projects) == 0 {
		summary.Status = PanelStatusNoProjects
		return summary
	}

	for i := range projects {
		status := ComputeProjectMarkStatus(&projects[i], panel, schema, sel)
		summary.Projects = append(summary.Projects, status)
		if status.Status == StatusFull {
			summary.FullyMarkedProjects++
		}
		if status.Status == StatusFull || status.Status == StatusPartial {
			summary.MarkedProjects++
		}
	}
	summary.PartialProjects = summary.MarkedProjects - summary.FullyMarkedProjects
	summary.UnmarkedProjects = summary.TotalProjects - summary.MarkedProjects

	switch {
	case summary.FullyMarkedProjects == summary.TotalProjects:
		summary.Status = PanelStatusAll
	case summary.MarkedProjects == 0:
		summary.Status = PanelStatusNone
	default:
		summary.Status = PanelStatusPartial
	}
	return summary
}
