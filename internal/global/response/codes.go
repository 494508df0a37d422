package response

// 通用错误
var (
	ErrInvalidRequest = newError(400, "请求参数错误")
	ErrTokenInvalid   = newError(401, "登录凭证无效或已过期")
	ErrUnauthorized   = newError(403, "没有操作权限")
	ErrNotFound       = newError(404, "资源不存在")
	ErrForbidden      = newError(405, "禁止该操作")
	ErrAlreadyExists  = newError(409, "资源已存在")
	ErrDatabase       = newError(500, "数据库错误")
	ErrInternal       = newError(501, "服务器内部错误")
)

// 答辩分组与分配相关错误
var (
	// ErrFacultyAssigned 教师已在当前学院/系的其他答辩小组中
	ErrFacultyAssigned = newError(40901, "教师已加入其他答辩小组")
	// ErrGuideConflict 指导教师不能评审自己指导的队伍
	ErrGuideConflict = newError(40902, "指导教师与答辩小组成员冲突")
	// ErrOperationInProgress 同一学院/系的批量操作正在执行中
	ErrOperationInProgress = newError(40903, "批量操作正在执行中，请稍后再试")
	// ErrReviewLocked 评审已锁定，禁止修改成绩
	ErrReviewLocked = newError(40904, "该次评审已锁定")
)
