package service

import (
	"errors"

	"github.com/Guducat/SaToken-FastStart/internal/common"
	"github.com/Guducat/SaToken-FastStart/internal/model"

	"gorm.io/gorm"
)

// AdminListUsers 获取所有用户（密码字段经 json:"-" 剥离，不会出现在响应中）
func (s *AccountService) AdminListUsers() ([]model.User, error) {
	return s.users.ListAll()
}

// AdminGetUser 按 ID 获取单个用户
func (s *AccountService) AdminGetUser(id uint) (*model.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("用户不存在")
		}
		return nil, err
	}
	return user, nil
}

// AdminDeleteUser 按 ID 删除用户，同时级联清理未消费的重置令牌
func (s *AccountService) AdminDeleteUser(id uint) error {
	if _, err := s.AdminGetUser(id); err != nil {
		return err
	}
	if err := s.users.DeleteByID(id); err != nil {
		return err
	}
	s.tokens.Remove(id)
	return nil
}
