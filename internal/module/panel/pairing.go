package panel

import (
	"sort"

	"capstone-panel-system/internal/global/response"
	"capstone-panel-system/internal/model"
)

// PairFaculty 将未分组教师两两配对
// 先按 ID 升序排序再顺次配对，同一批教师必然得到同一种分组结果；
// 奇数个时最后一人落单，由调用方上报而不是静默丢弃
func PairFaculty(facultyIDs []uint) (pairs [][2]uint, unpaired uint, hasUnpaired bool) {
	ids := make([]uint, len(facultyIDs))
	copy(ids, facultyIDs)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for i := 0; i+1 < len(ids); i += 2 {
		pairs = append(pairs, [2]uint{ids[i], ids[i+1]})
	}
	if len(ids)%2 == 1 {
		return pairs, ids[len(ids)-1], true
	}
	return pairs, 0, false
}

// NormalizePair 规范化无序教师对：小 ID 在前
func NormalizePair(a, b uint) (uint, uint) {
	if a > b {
		return b, a
	}
	return a, b
}

// classifyPairConflict 判断新教师对能否在已有小组旁成组
// 先查完全相同的组合（重复建组），再查任一教师已入组；
// 顺序不能反，重复组合必须报"已存在"而不是"教师已占用"。
// a、b 需已规范化（a < b）
func classifyPairConflict(panels []model.Panel, a, b uint) *response.Error {
	for i := range panels {
		if panels[i].FacultyAID == a && panels[i].FacultyBID == b {
			return response.ErrAlreadyExists.WithTips("该教师组合已存在")
		}
	}
	for i := range panels {
		if panels[i].HasFaculty(a) || panels[i].HasFaculty(b) {
			return response.ErrFacultyAssigned
		}
	}
	return nil
}
