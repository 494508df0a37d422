package assign

import (
	"io"
	"log/slog"
	"testing"

	"capstone-panel-system/internal/global/response"
	"capstone-panel-system/internal/model"
	"capstone-panel-system/test"

	"github.com/stretchr/testify/require"
)

func makePanel(id, a, b uint) model.Panel {
	p := model.Panel{FacultyAID: a, FacultyBID: b}
	p.ID = id
	return p
}

func makeProject(id, guideID uint) model.Project {
	p := model.Project{Name: "队伍", GuideID: guideID}
	p.ID = id
	return p
}

func TestPickPanel(t *testing.T) {
	panels := []model.Panel{
		makePanel(1, 1, 2),
		makePanel(2, 3, 4),
	}

	tests := []struct {
		name        string
		project     model.Project
		panels      []model.Panel
		wantPanelID uint
		wantReason  string
	}{
		{
			name:        "无冲突时取 ID 最小的小组",
			project:     makeProject(1, 5),
			panels:      panels,
			wantPanelID: 1,
		},
		{
			name:        "跳过指导教师所在的小组",
			project:     makeProject(2, 1),
			panels:      panels,
			wantPanelID: 2,
		},
		{
			name:        "无指导教师记录时直接取第一个",
			project:     makeProject(3, 0),
			panels:      panels,
			wantPanelID: 1,
		},
		{
			name:       "没有任何小组",
			project:    makeProject(4, 5),
			panels:     nil,
			wantReason: "该学院/系还没有答辩小组",
		},
		{
			name:       "指导教师与所有小组冲突",
			project:    makeProject(5, 1),
			panels:     []model.Panel{makePanel(1, 1, 2)},
			wantReason: "没有可用小组（指导教师与所有小组冲突）",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, reason := pickPanel(&tt.project, tt.panels)
			if tt.wantReason != "" {
				require.Nil(t, target)
				require.Equal(t, tt.wantReason, reason)
				return
			}
			require.NotNil(t, target)
			require.Equal(t, tt.wantPanelID, target.ID)
			require.Empty(t, reason)
		})
	}
}

func TestPickPanelBatch(t *testing.T) {
	// 一批三个队伍：两个可分配，一个指导教师与唯一小组冲突，
	// 冲突队伍只被跳过，不影响其余队伍
	panels := []model.Panel{makePanel(1, 1, 2)}
	projects := []model.Project{
		makeProject(1, 3),
		makeProject(2, 0),
		makeProject(3, 1),
	}

	var assigned, skipped []uint
	for i := range projects {
		if target, _ := pickPanel(&projects[i], panels); target != nil {
			assigned = append(assigned, projects[i].ID)
		} else {
			skipped = append(skipped, projects[i].ID)
		}
	}

	require.Equal(t, []uint{1, 2}, assigned)
	require.Equal(t, []uint{3}, skipped)
}

func TestAssignProjectRejectsInvalidBody(t *testing.T) {
	log = slog.New(slog.NewTextHandler(io.Discard, nil))

	resp := test.DoRequest(t, AssignProject, map[string]any{})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}
