package models

import "time"

// 用户角色
const (
	RoleOrdinary = 0 // 普通用户
	RoleAdmin    = 1 // 管理员
)

// 用户状态
const (
	StatusNormal = 0 // 正常
)

// User represents a registered account. PasswordHash never leaves the server.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Account      string `gorm:"size:256;uniqueIndex;not null"` // 登录账号
	PasswordHash string `gorm:"size:512;not null"`
	Username     string `gorm:"size:256;index"` // 用户昵称
	AvatarURL    string `gorm:"size:1024"`
	Gender       int    `gorm:"default:0"`
	Email        string `gorm:"size:512"`
	Phone        string `gorm:"size:128"`
	Status       int    `gorm:"default:0"`       // 0-正常
	Role         int    `gorm:"default:0;index"` // 0-普通用户 1-管理员
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SanitizedUser 脱敏用户：除密码哈希外其余字段原样复制，用于一切对外返回。
type SanitizedUser struct {
	ID        uint      `json:"id"`
	Account   string    `json:"userAccount"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatarUrl"`
	Gender    int       `json:"gender"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    int       `json:"userStatus"`
	Role      int       `json:"userRole"`
	CreatedAt time.Time `json:"createTime"`
}

// Sanitize 用户脱敏
func Sanitize(u *User) *SanitizedUser {
	if u == nil {
		return nil
	}
	return &SanitizedUser{
		ID:        u.ID,
		Account:   u.Account,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
		Gender:    u.Gender,
		Email:     u.Email,
		Phone:     u.Phone,
		Status:    u.Status,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
