// Package session keeps server-side login state in Redis, keyed by the
// session id a client presents in its cookie. Each session is a Redis hash
// holding a single attribute: the sanitized user written at login time.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Xinhui001/user-center/internal/models"

	"github.com/redis/go-redis/v9"
)

// 登录态在会话里的固定属性名
const loginStateField = "userLoginState"

const keyPrefix = "user-center:session:"

// Store 基于 Redis 的会话存储。会话本身不做显式销毁，到期由 Redis 过期回收。
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore creates a session store. ttl of 0 disables expiry.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Session returns a handle bound to the given session id. The backing Redis
// entry is created lazily on the first attribute write.
func (s *Store) Session(id string) *Session {
	return &Session{id: id, store: s}
}

func (s *Store) key(id string) string {
	return keyPrefix + id
}

// Session 单个会话的句柄，只操作它自己的登录态属性。
type Session struct {
	id    string
	store *Store
}

func (s *Session) ID() string {
	return s.id
}

// CurrentUser 读取会话中的登录态，未登录时返回 (nil, nil)。
func (s *Session) CurrentUser(ctx context.Context) (*models.SanitizedUser, error) {
	data, err := s.store.rdb.HGet(ctx, s.store.key(s.id), loginStateField).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read login state: %w", err)
	}
	var user models.SanitizedUser
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("decode login state: %w", err)
	}
	return &user, nil
}

// SetCurrentUser 写入登录态并刷新会话过期时间。
func (s *Session) SetCurrentUser(ctx context.Context, user *models.SanitizedUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode login state: %w", err)
	}
	key := s.store.key(s.id)
	if err := s.store.rdb.HSet(ctx, key, loginStateField, data).Err(); err != nil {
		return fmt.Errorf("write login state: %w", err)
	}
	if s.store.ttl > 0 {
		if err := s.store.rdb.Expire(ctx, key, s.store.ttl).Err(); err != nil {
			return fmt.Errorf("expire session: %w", err)
		}
	}
	return nil
}

// ClearCurrentUser 移除登录态，属性不存在时也不算错误。
func (s *Session) ClearCurrentUser(ctx context.Context) error {
	if err := s.store.rdb.HDel(ctx, s.store.key(s.id), loginStateField).Err(); err != nil {
		return fmt.Errorf("remove login state: %w", err)
	}
	return nil
}
