package service

import "errors"

// 业务错误，handler 层用 errors.Is 映射成响应码
var (
	ErrInvalidInput       = errors.New("请求参数为空或不合法")
	ErrAccountTaken       = errors.New("账号已存在")
	ErrInvalidCredentials = errors.New("账号或密码错误")
	ErrNotLoggedIn        = errors.New("未登录")
	ErrForbidden          = errors.New("无权限")
)
