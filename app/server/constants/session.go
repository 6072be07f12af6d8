package constants

import "time"

const (
	SessionCookieName     = "session"
	SessionDuration       = 60 * time.Minute // 会话从创建起的有效期
	SessionActiveDuration = 30 * time.Minute // 有活动时剩余不足此时长则向后延长
)

const (
	ContextKeySession = "session"
)
