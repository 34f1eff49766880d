package service

import (
	"errors"
	"strings"

	"github.com/Guducat/SaToken-FastStart/internal/common"
	"github.com/Guducat/SaToken-FastStart/internal/consts"
	"github.com/Guducat/SaToken-FastStart/internal/model"
	"github.com/Guducat/SaToken-FastStart/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterInput 注册参数（密码确认在 API 层完成）
type RegisterInput struct {
	Username  string
	Nickname  string
	Email     string
	AvatarURL string
	Password  string
}

// UserProfile 对外返回的用户资料，密码永不出现在其中
type UserProfile struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar_url"`
	Role     string `json:"role"`
}

// Login 使用用户名或邮箱登录。
// 先按用户名查询；查不到且账号中含 "@" 时再按邮箱查询。
// 用户不存在与密码错误统一返回同一条提示，避免账号枚举。
func (s *AccountService) Login(account, password string) (*model.User, error) {
	user, err := s.users.FindByUsername(account)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user = nil
	}

	if user == nil && strings.Contains(account, "@") {
		user, err = s.users.FindByEmail(account)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			user = nil
		}
	}

	if user == nil {
		return nil, common.NewUnauthorizedError("登录失败，请检查用户名或密码")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, common.NewUnauthorizedError("登录失败，请检查用户名或密码")
	}

	return user, nil
}

// Register 注册新用户，角色固定为 user，密码以 bcrypt 哈希入库。
// 用户名/邮箱冲突只返回一条笼统提示，不区分是哪个字段撞了。
func (s *AccountService) Register(in RegisterInput) (*model.User, error) {
	if ok, msg := utils.ValidateUsername(in.Username); !ok {
		return nil, common.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(in.Password); !ok {
		return nil, common.NewValidationError(msg)
	}
	if in.Email != "" {
		if ok, msg := utils.ValidateEmail(in.Email); !ok {
			return nil, common.NewValidationError(msg)
		}
	}

	usernameTaken, err := s.users.FieldExists(consts.UserFieldUsername, in.Username, nil)
	if err != nil {
		return nil, err
	}
	if usernameTaken {
		return nil, common.NewConflictError("注册失败，用户名或邮箱可能已存在")
	}

	if in.Email != "" {
		emailTaken, err := s.users.FieldExists(consts.UserFieldEmail, in.Email, nil)
		if err != nil {
			return nil, err
		}
		if emailTaken {
			return nil, common.NewConflictError("注册失败，用户名或邮箱可能已存在")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:  in.Username,
		Password:  string(hashed),
		Nickname:  in.Nickname,
		AvatarURL: in.AvatarURL,
		Role:      consts.RoleUser,
	}
	if in.Email != "" {
		email := in.Email
		user.Email = &email
	}

	// 查重与插入之间仍可能并发竞争，唯一索引在此兜底
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, common.NewConflictError("注册失败，用户名或邮箱可能已存在")
		}
		return nil, err
	}

	return user, nil
}

// GetUserByID 按 ID 获取用户
func (s *AccountService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("用户信息不存在")
		}
		return nil, err
	}
	return user, nil
}

// GetProfile 按 ID 获取用户资料（密码已剥离，头像为空时替换为默认头像）
func (s *AccountService) GetProfile(id uint) (*UserProfile, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	return &UserProfile{
		ID:       user.ID,
		Username: user.Username,
		Nickname: user.Nickname,
		Email:    user.EmailOrEmpty(),
		Avatar:   user.AvatarOrDefault(),
		Role:     user.Role,
	}, nil
}

// UpdateUserInfo 更新用户资料。
// 昵称/邮箱传空表示不修改；avatarURL 为 nil 表示不修改，指向空串则清空头像。
// 邮箱与其他用户冲突时不做任何修改。
func (s *AccountService) UpdateUserInfo(id uint, nickname, email string, avatarURL *string) error {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("用户信息更新失败")
		}
		return err
	}

	if email != "" && email != user.EmailOrEmpty() {
		if ok, msg := utils.ValidateEmail(email); !ok {
			return common.NewValidationError(msg)
		}
		excludeID := user.ID
		emailTaken, err := s.users.FieldExists(consts.UserFieldEmail, email, &excludeID)
		if err != nil {
			return err
		}
		if emailTaken {
			return common.NewConflictError("用户信息更新失败，邮箱可能已被使用")
		}
	}

	if nickname != "" {
		user.Nickname = nickname
	}
	if email != "" {
		e := email
		user.Email = &e
	}
	if avatarURL != nil {
		user.AvatarURL = *avatarURL
	}

	return s.users.Save(user)
}

// VerifyIdentity 找回密码第一步：校验用户名与邮箱属于同一账户，
// 通过后签发重置令牌。令牌随响应直接返回（线上部署应改为邮件送达）。
func (s *AccountService) VerifyIdentity(username, email string) (*model.User, string, error) {
	if username == "" || email == "" {
		return nil, "", common.NewValidationError("用户名和邮箱不能为空")
	}

	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", common.NewNotFoundError("用户不存在")
		}
		return nil, "", err
	}

	if user.EmailOrEmpty() != email {
		return nil, "", common.NewValidationError("邮箱与用户不匹配")
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// ResetPassword 找回密码第二步：校验令牌后更新密码并消费令牌。
// 任一步失败都不会产生部分写入。
func (s *AccountService) ResetPassword(userID uint, newPassword, token string) error {
	if ok, msg := utils.ValidatePassword(newPassword); !ok {
		return common.NewValidationError(msg)
	}

	if !s.tokens.Verify(userID, token) {
		return common.NewUnauthorizedError("重置令牌无效或已过期")
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("密码重置失败")
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	if err := s.users.Save(user); err != nil {
		return err
	}

	// 重置成功后令牌立即作废
	s.tokens.Remove(userID)
	return nil
}

// DeleteAccount 永久注销账户，同时级联清理未消费的重置令牌。
func (s *AccountService) DeleteAccount(userID uint) error {
	if _, err := s.users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("账户注销失败")
		}
		return err
	}

	if err := s.users.DeleteByID(userID); err != nil {
		return err
	}

	s.tokens.Remove(userID)
	return nil
}
