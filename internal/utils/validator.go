package utils

import (
	"regexp"
	"strings"
)

// ValidateUsername checks if the username meets the requirements.
func ValidateUsername(username string) (bool, string) {
	if username == "" {
		return false, "用户名不能为空"
	}

	// 允许英文大小写、数字和下划线
	if matched, _ := regexp.MatchString(`^[a-zA-Z0-9_]+$`, username); !matched {
		return false, "用户名只能包含英文大小写、数字和下划线"
	}

	// 不能是纯数字
	if matched, _ := regexp.MatchString(`^[0-9]+$`, username); matched {
		return false, "用户名不能为纯数字"
	}

	return true, ""
}

// ValidatePassword checks that a password is present.
// 不做强度限制，密码策略由客户端自行引导。
func ValidatePassword(password string) (bool, string) {
	if password == "" {
		return false, "密码不能为空"
	}

	return true, ""
}

// ValidateEmail checks if the email has a plausible shape.
func ValidateEmail(email string) (bool, string) {
	if email == "" {
		return false, "邮箱不能为空"
	}
	if len(email) > 255 {
		return false, "邮箱过长"
	}
	if strings.Count(email, "@") != 1 {
		return false, "邮箱格式不正确"
	}
	if matched, _ := regexp.MatchString(`^[^@\s]+@[^@\s]+\.[^@\s]+$`, email); !matched {
		return false, "邮箱格式不正确"
	}
	return true, ""
}
