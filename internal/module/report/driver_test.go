package report

import (
	"testing"

	"capstone-panel-system/internal/model"
	"capstone-panel-system/internal/module/marks"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func testContext() Context {
	return Context{School: "计算机学院", Department: "软件工程"}
}

func testSchema() *model.MarkingSchema {
	return &model.MarkingSchema{
		Reviews: []model.SchemaReview{
			{ReviewName: "review1", FacultyType: model.FacultyTypeGuide},
			{ReviewName: "review2", DisplayName: "中期答辩", FacultyType: model.FacultyTypePanel},
			{ReviewName: "review3", FacultyType: model.FacultyTypePanel},
		},
	}
}

func testPanel(id, a, b uint) model.Panel {
	p := model.Panel{School: "计算机学院", Department: "软件工程", FacultyAID: a, FacultyBID: b}
	p.ID = id
	return p
}

func markedProject(id uint, reviews ...string) model.Project {
	var rs []model.StudentReview
	for _, name := range reviews {
		rs = append(rs, model.StudentReview{
			ReviewName: name,
			Marks:      datatypes.JSONMap{"content": float64(8)},
		})
	}
	p := model.Project{Name: "队伍", School: "计算机学院", Department: "软件工程",
		Students: []model.Student{{RegNo: "2021001", Name: "学生", Reviews: rs}}}
	p.ID = id
	return p
}

func TestBuildContextReportSkipsEmptyContext(t *testing.T) {
	report := BuildContextReport(ContextData{Context: testContext(), Schema: testSchema()})
	require.True(t, report.Skipped)
	require.NotEmpty(t, report.SkipReason)
}

func TestBuildContextReportSkipsMissingSchema(t *testing.T) {
	data := ContextData{
		Context: testContext(),
		Panels:  []PanelData{{Panel: testPanel(1, 1, 2)}},
	}

	// 完全没有配置
	report := BuildContextReport(data)
	require.True(t, report.Skipped)

	// 有配置但没有小组评审
	data.Schema = &model.MarkingSchema{Reviews: []model.SchemaReview{
		{ReviewName: "review1", FacultyType: model.FacultyTypeGuide},
	}}
	report = BuildContextReport(data)
	require.True(t, report.Skipped)
}

func TestBuildContextReportReviewOptions(t *testing.T) {
	data := ContextData{
		Context: testContext(),
		Schema:  testSchema(),
		Panels:  []PanelData{{Panel: testPanel(1, 1, 2)}},
	}
	report := BuildContextReport(data)
	require.False(t, report.Skipped)

	// 下拉项为 all + 全部小组评审，指导评审不出现
	require.Equal(t, []ReviewOption{
		{Value: "all", Label: "全部小组评审"},
		{Value: "review2", Label: "中期答辩"},
		{Value: "review3", Label: "review3"},
	}, report.ReviewOptions)
}

func TestBuildContextReportMatrix(t *testing.T) {
	data := ContextData{
		Context: testContext(),
		Schema:  testSchema(),
		Panels: []PanelData{
			// 小组 1 录全两个小组评审
			{Panel: testPanel(1, 1, 2), Projects: []model.Project{markedProject(1, "review2", "review3")}},
			// 小组 2 只录了 review2
			{Panel: testPanel(2, 3, 4), Projects: []model.Project{markedProject(2, "review2")}},
			// 小组 3 什么都没录
			{Panel: testPanel(3, 5, 6), Projects: []model.Project{markedProject(3)}},
		},
	}
	report := BuildContextReport(data)
	require.False(t, report.Skipped)
	require.Len(t, report.Panels, 3)

	// (all + 2 个评审) × 3 种状态
	require.Len(t, report.Matrix, 9)

	cell := func(review, filter string) MatrixCell {
		for _, c := range report.Matrix {
			if c.Review == review && c.Filter == filter {
				return c
			}
		}
		t.Fatalf("matrix cell %s/%s not found", review, filter)
		return MatrixCell{}
	}

	all := cell("all", marks.PanelStatusAll)
	require.Equal(t, 1, all.PanelCount)
	require.Equal(t, []uint{1}, all.PanelIDs)
	require.Equal(t, []uint{1, 2}, all.FacultyIDs)

	partial := cell("all", marks.PanelStatusPartial)
	require.Equal(t, 1, partial.PanelCount)
	require.Equal(t, []uint{2}, partial.PanelIDs)

	none := cell("all", marks.PanelStatusNone)
	require.Equal(t, 1, none.PanelCount)
	require.Equal(t, []uint{3}, none.PanelIDs)
	require.Equal(t, []uint{5, 6}, none.FacultyIDs)

	// 单看 review2 时小组 1、2 都算录全
	r2Full := cell("review2", marks.PanelStatusAll)
	require.Equal(t, 2, r2Full.PanelCount)
	require.Equal(t, []uint{1, 2}, r2Full.PanelIDs)
	require.Equal(t, []uint{1, 2, 3, 4}, r2Full.FacultyIDs)

	r3Full := cell("review3", marks.PanelStatusAll)
	require.Equal(t, []uint{1}, r3Full.PanelIDs)
}
