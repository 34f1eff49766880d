package consts

import "time"

const (
	ApplicationName    = "SaToken-FastStart Server"
	ApplicationVersion = "1.0.0"
)

// 用户角色
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// DefaultAvatarURL 用户未设置头像时返回的默认头像
const DefaultAvatarURL = "https://tse3-mm.cn.bing.net/th/id/OIP-C.1nbiDZSh4TGfU2F8Qwe4QgHaHa?cb=iwc1&rs=1&pid=ImgDetMain"

// 重置密码令牌有效期与后台清理周期
const (
	ResetTokenTTL           = 30 * time.Minute
	ResetTokenSweepInterval = 10 * time.Minute
)
