package assign

import "fmt"

// CanAssign 判断队伍能否分配给某答辩小组
// 规则只有一条：指导教师不能坐在自己队伍的评审席上
// guideID 为 0 表示暂无指导记录，此时放行（无指导者不构成冲突）
func CanAssign(guideID uint, guideName string, panelFaculty [2]uint) (allowed bool, reason string) {
	if guideID == 0 {
		return true, ""
	}
	if guideID == panelFaculty[0] || guideID == panelFaculty[1] {
		if guideName != "" {
			return false, fmt.Sprintf("指导教师 %s 是该小组成员", guideName)
		}
		return false, fmt.Sprintf("指导教师(ID %d)是该小组成员", guideID)
	}
	return true, ""
}
