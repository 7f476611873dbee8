// Package service implements the account core: input validation, credential
// hashing, uniqueness enforcement, session login state and role gating.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Xinhui001/user-center/internal/models"
	"github.com/Xinhui001/user-center/internal/store"
	"github.com/Xinhui001/user-center/internal/util"
)

// 固定盐值。历史遗留：参与已有用户的密码哈希，不可更改。
const passwordSalt = "jxh"

// UserStore 用户记录存储契约
type UserStore interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByAccount(ctx context.Context, account string) (*models.User, error)
	FindByAccountAndHash(ctx context.Context, account, passwordHash string) (*models.User, error)
	CountByAccount(ctx context.Context, account string) (int64, error)
	Insert(ctx context.Context, user *models.User) (uint, error)
	FindAll(ctx context.Context, usernameFilter string) ([]models.User, error)
	DeleteByID(ctx context.Context, id uint) (bool, error)
}

// LoginSession 当前请求对应会话的登录态读写契约。
// 未登录时 CurrentUser 返回 (nil, nil)。
type LoginSession interface {
	CurrentUser(ctx context.Context) (*models.SanitizedUser, error)
	SetCurrentUser(ctx context.Context, user *models.SanitizedUser) error
	ClearCurrentUser(ctx context.Context) error
}

// UserService 账户核心服务，本身无状态，可并发使用。
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Register 用户注册，成功返回新用户 id。
// 校验顺序固定：空参 → 账号长度 → 账号字符 → 密码长度 → 两次一致 → 账号重复。
func (s *UserService) Register(ctx context.Context, account, password, checkPassword string) (uint, error) {
	if util.IsAnyBlank(account, password, checkPassword) {
		return 0, ErrInvalidInput
	}
	if err := util.ValidateAccount(account); err != nil {
		return 0, err
	}
	if err := util.ValidatePassword(password); err != nil {
		return 0, err
	}
	if err := util.ValidatePassword(checkPassword); err != nil {
		return 0, err
	}
	if err := util.ValidatePasswordsMatch(password, checkPassword); err != nil {
		return 0, err
	}

	count, err := s.users.CountByAccount(ctx, account)
	if err != nil {
		return 0, fmt.Errorf("check account exists: %w", err)
	}
	if count > 0 {
		return 0, ErrAccountTaken
	}

	user := &models.User{
		Account:      account,
		PasswordHash: util.PasswordDigest(passwordSalt, password),
	}
	id, err := s.users.Insert(ctx, user)
	if err != nil {
		// 存在性检查和写入之间的并发竞争由唯一索引兜底
		if errors.Is(err, store.ErrDuplicateAccount) {
			return 0, ErrAccountTaken
		}
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// Login 校验凭证，成功后把脱敏用户写入会话登录态并返回。
// 账号不存在和密码错误统一返回 ErrInvalidCredentials，避免账号枚举。
func (s *UserService) Login(ctx context.Context, account, password string, sess LoginSession) (*models.SanitizedUser, error) {
	if util.IsAnyBlank(account, password) {
		return nil, ErrInvalidInput
	}
	if err := util.ValidateAccount(account); err != nil {
		return nil, err
	}
	if err := util.ValidatePassword(password); err != nil {
		return nil, err
	}

	digest := util.PasswordDigest(passwordSalt, password)
	user, err := s.users.FindByAccountAndHash(ctx, account, digest)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	safe := models.Sanitize(user)
	if err := sess.SetCurrentUser(ctx, safe); err != nil {
		return nil, fmt.Errorf("save login state: %w", err)
	}
	return safe, nil
}

// CurrentUser 返回会话对应的当前用户。会话里只存登录时的快照，
// 这里按 id 重新查库，保证返回的是新鲜数据。
func (s *UserService) CurrentUser(ctx context.Context, sess LoginSession) (*models.SanitizedUser, error) {
	cur, err := sess.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("read login state: %w", err)
	}
	if cur == nil {
		return nil, ErrNotLoggedIn
	}

	user, err := s.users.FindByID(ctx, cur.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return models.Sanitize(user), nil
}

// Logout 移除会话登录态，幂等，始终返回 1。
func (s *UserService) Logout(ctx context.Context, sess LoginSession) (int, error) {
	if err := sess.ClearCurrentUser(ctx); err != nil {
		return 0, fmt.Errorf("clear login state: %w", err)
	}
	return 1, nil
}

// SearchUsers 管理员查询用户列表，usernameFilter 非空时按昵称包含过滤。
func (s *UserService) SearchUsers(ctx context.Context, usernameFilter string, sess LoginSession) ([]*models.SanitizedUser, error) {
	if !s.isAdmin(ctx, sess) {
		return nil, ErrForbidden
	}

	users, err := s.users.FindAll(ctx, strings.TrimSpace(usernameFilter))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	result := make([]*models.SanitizedUser, 0, len(users))
	for i := range users {
		result = append(result, models.Sanitize(&users[i]))
	}
	return result, nil
}

// DeleteUser 管理员按 id 删除用户，返回是否确实删掉了。
func (s *UserService) DeleteUser(ctx context.Context, id int64, sess LoginSession) (bool, error) {
	if !s.isAdmin(ctx, sess) {
		return false, ErrForbidden
	}
	if id <= 0 {
		return false, ErrInvalidInput
	}

	ok, err := s.users.DeleteByID(ctx, uint(id))
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return ok, nil
}

// isAdmin 管理员判定的唯一入口：会话存在登录态且角色为管理员。
func (s *UserService) isAdmin(ctx context.Context, sess LoginSession) bool {
	cur, err := sess.CurrentUser(ctx)
	return err == nil && cur != nil && cur.Role == models.RoleAdmin
}
