package constants

// 注销后的会话 ID 黑名单
const (
	CacheKeySessionRevoked = "climate:session:revoked:%s"
)
