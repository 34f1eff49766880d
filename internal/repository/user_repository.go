package repository

import (
	"github.com/Guducat/SaToken-FastStart/internal/consts"
	"github.com/Guducat/SaToken-FastStart/internal/model"
)

// UserStore 是账户服务依赖的凭据存储契约，
// 由具体数据库实现提供按键查询与简单增删改。
type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FieldExists(field consts.UserField, value string, excludeUserID *uint) (bool, error)
	Create(user *model.User) error
	Save(user *model.User) error
	DeleteByID(id uint) error
	ListAll() ([]model.User, error)
	CountAll() (int64, error)
}
