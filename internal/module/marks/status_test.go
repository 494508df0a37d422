package marks

import (
	"testing"

	"capstone-panel-system/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func testSchema(reviews ...model.SchemaReview) *model.MarkingSchema {
	return &model.MarkingSchema{
		School:     "计算机学院",
		Department: "软件工程",
		Reviews:    reviews,
	}
}

func panelReview(name string) model.SchemaReview {
	return model.SchemaReview{ReviewName: name, FacultyType: model.FacultyTypePanel}
}

func guideReview(name string) model.SchemaReview {
	return model.SchemaReview{ReviewName: name, FacultyType: model.FacultyTypeGuide}
}

func studentWith(regNo string, reviews ...model.StudentReview) model.Student {
	return model.Student{RegNo: regNo, Name: regNo, Reviews: reviews}
}

func markedReview(name string, marks map[string]interface{}) model.StudentReview {
	return model.StudentReview{ReviewName: name, Marks: datatypes.JSONMap(marks)}
}

func projectWith(id uint, students ...model.Student) *model.Project {
	p := &model.Project{Name: "队伍", School: "计算机学院", Department: "软件工程", Students: students}
	p.ID = id
	return p
}

func TestMarkIsPositive(t *testing.T) {
	tests := []struct {
		name string
		v    interface{}
		want bool
	}{
		{name: "正数", v: float64(8), want: true},
		{name: "正数字符串", v: "8", want: true},
		{name: "小数字符串", v: "7.5", want: true},
		{name: "零分", v: float64(0)},
		{name: "零分字符串", v: "0"},
		{name: "负数", v: float64(-1)},
		{name: "非数字字符串", v: "abc"},
		{name: "空值", v: nil},
		{name: "布尔值", v: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, markIsPositive(tt.v))
		})
	}
}

func TestComputeProjectMarkStatusNoSchema(t *testing.T) {
	project := projectWith(1, studentWith("2021001"))

	// 未配置评分方案
	status := ComputeProjectMarkStatus(project, nil, nil, AllPanelReviews())
	require.Equal(t, StatusNoSchema, status.Status)

	// 配置里只有指导评审，没有小组评审，同样无法判定
	schema := testSchema(guideReview("review1"))
	status = ComputeProjectMarkStatus(project, nil, schema, AllPanelReviews())
	require.Equal(t, StatusNoSchema, status.Status)
}

func TestComputeProjectMarkStatusUnknownReview(t *testing.T) {
	schema := testSchema(panelReview("review2"))
	project := projectWith(1, studentWith("2021001"))

	status := ComputeProjectMarkStatus(project, nil, schema, SingleReview("review9"))
	require.Equal(t, StatusNoReview, status.Status)
}

func TestComputeProjectMarkStatusPartialComponentCountsAsMarked(t *testing.T) {
	// 只要任意组件为正分，该评审即算已录入，零分组件不影响判定
	schema := testSchema(panelReview("review2"))
	project := projectWith(1, studentWith("2021001",
		markedReview("review2", map[string]interface{}{"presentation": float64(0), "content": "8"}),
	))

	status := ComputeProjectMarkStatus(project, nil, schema, SingleReview("review2"))
	require.Equal(t, StatusFull, status.Status)
	require.Equal(t, 1, status.StudentsWithMarks)
	require.Equal(t, 1, status.StudentsFullyMarked)
}

func TestComputeProjectMarkStatus(t *testing.T) {
	schema := testSchema(panelReview("review2"), panelReview("review3"), guideReview("review1"))

	full := studentWith("2021001",
		markedReview("review2", map[string]interface{}{"content": float64(8)}),
		markedReview("review3", map[string]interface{}{"content": float64(9)}),
	)
	partial := studentWith("2021002",
		markedReview("review2", map[string]interface{}{"content": float64(7)}),
	)
	empty := studentWith("2021003")
	zeroOnly := studentWith("2021004",
		markedReview("review2", map[string]interface{}{"content": float64(0)}),
	)

	tests := []struct {
		name       string
		project    *model.Project
		sel        ReviewSelection
		wantStatus string
		wantMarked int
		wantFull   int
	}{
		{
			name:       "全部学生全部评审已录入",
			project:    projectWith(1, full),
			sel:        AllPanelReviews(),
			wantStatus: StatusFull,
			wantMarked: 1,
			wantFull:   1,
		},
		{
			name:       "部分学生有成绩",
			project:    projectWith(2, full, partial, empty),
			sel:        AllPanelReviews(),
			wantStatus: StatusPartial,
			wantMarked: 2,
			wantFull:   1,
		},
		{
			name:       "没有任何成绩",
			project:    projectWith(3, empty),
			sel:        AllPanelReviews(),
			wantStatus: StatusNone,
		},
		{
			name:       "只有零分不算已录入",
			project:    projectWith(4, zeroOnly),
			sel:        AllPanelReviews(),
			wantStatus: StatusNone,
		},
		{
			name:       "没有学生的队伍归入 none",
			project:    projectWith(5),
			sel:        AllPanelReviews(),
			wantStatus: StatusNone,
		},
		{
			name:       "单个评审视角下部分录入者也算录全",
			project:    projectWith(6, partial),
			sel:        SingleReview("review2"),
			wantStatus: StatusFull,
			wantMarked: 1,
			wantFull:   1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := ComputeProjectMarkStatus(tt.project, nil, schema, tt.sel)
			require.Equal(t, tt.wantStatus, status.Status)
			require.Equal(t, tt.wantMarked, status.StudentsWithMarks)
			require.Equal(t, tt.wantFull, status.StudentsFullyMarked)
		})
	}
}

func TestComputePanelMarkSummary(t *testing.T) {
	schema := testSchema(panelReview("review2"))
	panel := &model.Panel{School: "计算机学院", Department: "软件工程", FacultyAID: 1, FacultyBID: 2}
	panel.ID = 10

	full := *projectWith(1, studentWith("2021001",
		markedReview("review2", map[string]interface{}{"content": float64(8)}),
	))
	partial := *projectWith(2,
		studentWith("2021002", markedReview("review2", map[string]interface{}{"content": float64(7)})),
		studentWith("2021003"),
	)
	unmarked := *projectWith(3, studentWith("2021004"))

	tests := []struct {
		name        string
		projects    []model.Project
		wantStatus  string
		wantFull    int
		wantPartial int
	}{
		{
			name:       "全部队伍录全",
			projects:   []model.Project{full},
			wantStatus: PanelStatusAll,
			wantFull:   1,
		},
		{
			name:        "部分队伍有成绩",
			projects:    []model.Project{full, partial, unmarked},
			wantStatus:  PanelStatusPartial,
			wantFull:    1,
			wantPartial: 1,
		},
		{
			name:       "没有任何成绩",
			projects:   []model.Project{unmarked},
			wantStatus: PanelStatusNone,
		},
		{
			name:       "名下没有队伍",
			projects:   nil,
			wantStatus: PanelStatusNoProjects,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := ComputePanelMarkSummary(panel, tt.projects, schema, AllPanelReviews())
			require.Equal(t, tt.wantStatus, summary.Status)
			require.Equal(t, tt.wantFull, summary.FullyMarkedProjects)
			require.Equal(t, tt.wantPartial, summary.PartialProjects)
			require.Equal(t, len(tt.projects), summary.TotalProjects)
		})
	}
}

func TestSingleReviewSelection(t *testing.T) {
	require.True(t, SingleReview("").All)
	require.True(t, SingleReview("all").All)
	require.False(t, SingleReview("review2").All)
	require.Equal(t, "review2", SingleReview("review2").Name)
}

func TestSchemaCache(t *testing.T) {
	calls := 0
	cache := NewSchemaCacheWithLoader(func(school, department string) (*model.MarkingSchema, error) {
		calls++
		if school == "计算机学院" {
			return testSchema(panelReview("review2")), nil
		}
		return nil, nil
	})

	s1, err := cache.Get("计算机学院", "软件工程")
	require.NoError(t, err)
	require.NotNil(t, s1)
	s2, err := cache.Get("计算机学院", "软件工程")
	require.NoError(t, err)
	require.Same(t, s1, s2)
	require.Equal(t, 1, calls)

	// 未配置的结果也会被缓存
	s3, err := cache.Get("外国语学院", "英语")
	require.NoError(t, err)
	require.Nil(t, s3)
	_, _ = cache.Get("外国语学院", "英语")
	require.Equal(t, 2, calls)
}
