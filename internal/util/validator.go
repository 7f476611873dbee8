package util

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// 校验错误，调用方用 errors.Is 区分具体原因
var (
	ErrAccountBlank        = errors.New("账号不能为空")
	ErrAccountTooShort     = errors.New("账号长度不能小于 4 位")
	ErrAccountInvalidChars = errors.New("账号不能包含特殊字符")
	ErrPasswordBlank       = errors.New("密码不能为空")
	ErrPasswordTooShort    = errors.New("密码长度不能小于 8 位")
	ErrPasswordMismatch    = errors.New("两次输入的密码不一致")
)

// 账号中禁止出现的字符：空白、控制符、半角/全角标点
var invalidAccountChars = regexp.MustCompile("[ _`~!@#$%^&*()+=|{}':;',\\\\\\[\\].<>/?~！@#￥%……&*（）——+|{}【】‘；：”“’。，、？]|\n|\r|\t")

// ValidateAccount 校验账号格式：非空、不少于 4 位、不含特殊字符
func ValidateAccount(account string) error {
	if strings.TrimSpace(account) == "" {
		return ErrAccountBlank
	}
	if utf8.RuneCountInString(account) < 4 {
		return ErrAccountTooShort
	}
	if invalidAccountChars.MatchString(account) {
		return ErrAccountInvalidChars
	}
	return nil
}

// ValidatePassword 校验密码格式：非空、不少于 8 位
func ValidatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrPasswordBlank
	}
	if utf8.RuneCountInString(password) < 8 {
		return ErrPasswordTooShort
	}
	return nil
}

// ValidatePasswordsMatch 注册时校验两次输入的密码一致
func ValidatePasswordsMatch(password, checkPassword string) error {
	if password != checkPassword {
		return ErrPasswordMismatch
	}
	return nil
}

// IsAnyBlank 任意一个参数为空白即返回 true
func IsAnyBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
