package assign

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanAssign(t *testing.T) {
	tests := []struct {
		name        string
		guideID     uint
		guideName   string
		panel       [2]uint
		wantAllowed bool
	}{
		{
			name:        "指导教师不在小组内",
			guideID:     1,
			guideName:   "张伟",
			panel:       [2]uint{3, 4},
			wantAllowed: true,
		},
		{
			name:      "指导教师是小组成员 A",
			guideID:   1,
			guideName: "张伟",
			panel:     [2]uint{1, 2},
		},
		{
			name:      "指导教师是小组成员 B",
			guideID:   2,
			guideName: "李娜",
			panel:     [2]uint{1, 2},
		},
		{
			name:        "无指导教师记录时放行",
			guideID:     0,
			panel:       [2]uint{1, 2},
			wantAllowed: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, reason := CanAssign(tt.guideID, tt.guideName, tt.panel)
			require.Equal(t, tt.wantAllowed, allowed)
			if tt.wantAllowed {
				require.Empty(t, reason)
			} else {
				require.NotEmpty(t, reason)
			}
		})
	}
}

func TestCanAssignReasonNamesGuide(t *testing.T) {
	// 冲突原因要点名指导教师，方便管理员排查
	_, reason := CanAssign(1, "张伟", [2]uint{1, 2})
	require.Contains(t, reason, "张伟")

	// 查不到姓名时退回 ID
	_, reason = CanAssign(1, "", [2]uint{1, 2})
	require.Contains(t, reason, "ID 1")
}
