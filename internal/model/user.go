package model

import (
	"time"

	"github.com/Guducat/SaToken-FastStart/internal/consts"
)

type User struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string  `json:"username" gorm:"uniqueIndex;not null;size:64"`
	Password  string  `json:"-" gorm:"not null"`
	Nickname  string  `json:"nickname" gorm:"size:64"`
	Email     *string `json:"email" gorm:"uniqueIndex;size:255"` // 为空时存 NULL，避免空邮箱互相撞唯一索引
	AvatarURL string  `json:"avatar_url"`
	Role      string  `json:"role" gorm:"not null;default:user;size:16"` // user / admin
}

// EmailOrEmpty 返回邮箱，无邮箱时返回空字符串
func (u *User) EmailOrEmpty() string {
	if u.Email == nil {
		return ""
	}
	return *u.Email
}

// AvatarOrDefault 返回头像 URL，未设置头像时返回默认头像
func (u *User) AvatarOrDefault() string {
	if u.AvatarURL == "" {
		return consts.DefaultAvatarURL
	}
	return u.AvatarURL
}

// IsAdmin 判断是否管理员角色
func (u *User) IsAdmin() bool {
	return u.Role == consts.RoleAdmin
}
