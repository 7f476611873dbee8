package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Xinhui001/user-center/internal/models"

	"gorm.io/gorm"
)

// UserStore handles persistence for users.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

func (s *UserStore) FindByAccount(ctx context.Context, account string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("account = ?", account).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by account: %w", err)
	}
	return &user, nil
}

// FindByAccountAndHash 按账号和密码哈希同时匹配，登录专用。
func (s *UserStore) FindByAccountAndHash(ctx context.Context, account, passwordHash string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("account = ? AND password_hash = ?", account, passwordHash).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by credentials: %w", err)
	}
	return &user, nil
}

func (s *UserStore) CountByAccount(ctx context.Context, account string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("account = ?", account).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count by account: %w", err)
	}
	return count, nil
}

// Insert 写入新用户并返回分配的 id。账号命中唯一索引时返回 ErrDuplicateAccount。
func (s *UserStore) Insert(ctx context.Context, user *models.User) (uint, error) {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, ErrDuplicateAccount
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return user.ID, nil
}

// FindAll 返回全部用户；usernameFilter 非空时按昵称做 LIKE 包含过滤。
func (s *UserStore) FindAll(ctx context.Context, usernameFilter string) ([]models.User, error) {
	q := s.db.WithContext(ctx).Model(&models.User{})
	if usernameFilter != "" {
		q = q.Where("username LIKE ?", "%"+usernameFilter+"%")
	}
	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// DeleteByID 按 id 删除，返回是否确实删掉了一行。
func (s *UserStore) DeleteByID(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete user: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
