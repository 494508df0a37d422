package panel

import (
	"testing"

	"capstone-panel-system/internal/global/response"
	"capstone-panel-system/internal/model"

	"github.com/stretchr/testify/require"
)

func TestPairFaculty(t *testing.T) {
	tests := []struct {
		name        string
		ids         []uint
		wantPairs   [][2]uint
		wantLeft    uint
		wantHasLeft bool
	}{
		{
			name: "偶数个教师全部配对",
			ids:  []uint{4, 1, 3, 2},
			wantPairs: [][2]uint{
				{1, 2},
				{3, 4},
			},
		},
		{
			name: "奇数个教师最后一人落单",
			ids:  []uint{5, 2, 9, 7, 1},
			wantPairs: [][2]uint{
				{1, 2},
				{5, 7},
			},
			wantLeft:    9,
			wantHasLeft: true,
		},
		{
			name:        "单个教师无法配对",
			ids:         []uint{3},
			wantLeft:    3,
			wantHasLeft: true,
		},
		{
			name: "空列表",
			ids:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs, left, hasLeft := PairFaculty(tt.ids)
			require.Equal(t, tt.wantPairs, pairs)
			require.Equal(t, tt.wantLeft, left)
			require.Equal(t, tt.wantHasLeft, hasLeft)
		})
	}
}

func TestPairFacultyDeterministic(t *testing.T) {
	// 同一批教师不管传入顺序如何，分组结果必须一致
	a, _, _ := PairFaculty([]uint{10, 30, 20, 40, 50, 60})
	b, _, _ := PairFaculty([]uint{60, 50, 40, 30, 20, 10})
	require.Equal(t, a, b)
}

func TestPairFacultyDoesNotMutateInput(t *testing.T) {
	ids := []uint{3, 1, 2}
	PairFaculty(ids)
	require.Equal(t, []uint{3, 1, 2}, ids)
}

func TestClassifyPairConflict(t *testing.T) {
	makePanel := func(id, a, b uint) model.Panel {
		p := model.Panel{FacultyAID: a, FacultyBID: b}
		p.ID = id
		return p
	}
	existing := []model.Panel{
		makePanel(1, 1, 2),
		makePanel(2, 3, 4),
	}

	tests := []struct {
		name    string
		a, b    uint
		wantErr *response.Error
	}{
		{name: "全新组合", a: 5, b: 6},
		{name: "完全重复的组合报已存在", a: 1, b: 2, wantErr: response.ErrAlreadyExists},
		{name: "一名教师已在其他小组", a: 2, b: 5, wantErr: response.ErrFacultyAssigned},
		{name: "两名教师分属不同小组", a: 2, b: 3, wantErr: response.ErrFacultyAssigned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyPairConflict(existing, tt.a, tt.b)
			if tt.wantErr == nil {
				require.Nil(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClassifyPairConflictDuplicateBeatsOccupied(t *testing.T) {
	// 重建已有组合时两名教师同时也"已入组"，
	// 必须报重复而不是占用
	p := model.Panel{FacultyAID: 1, FacultyBID: 2}
	p.ID = 1
	err := classifyPairConflict([]model.Panel{p}, 1, 2)
	require.ErrorIs(t, err, response.ErrAlreadyExists)
}

func TestNormalizePair(t *testing.T) {
	a, b := NormalizePair(7, 3)
	require.Equal(t, uint(3), a)
	require.Equal(t, uint(7), b)

	a, b = NormalizePair(3, 7)
	require.Equal(t, uint(3), a)
	require.Equal(t, uint(7), b)
}
