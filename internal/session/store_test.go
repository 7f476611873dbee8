package session

import (
	"context"
	"testing"
	"time"

	"github.com/Xinhui001/user-center/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewStore(rdb, ttl)
}

func TestSession_LoginStateRoundTrip(t *testing.T) {
	store := newTestStore(t, time.Hour)
	ctx := context.Background()
	sess := store.Session("sid-1")

	user := &models.SanitizedUser{
		ID:       42,
		Account:  "abcd",
		Username: "张三",
		Role:     models.RoleAdmin,
	}
	if err := sess.SetCurrentUser(ctx, user); err != nil {
		t.Fatalf("SetCurrentUser error = %v", err)
	}

	got, err := sess.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser error = %v", err)
	}
	if got == nil {
		t.Fatal("CurrentUser = nil, want user")
	}
	if got.ID != 42 || got.Account != "abcd" || got.Username != "张三" || got.Role != models.RoleAdmin {
		t.Errorf("CurrentUser = %+v, want %+v", got, user)
	}
}

func TestSession_CurrentUser_Absent(t *testing.T) {
	store := newTestStore(t, time.Hour)

	got, err := store.Session("never-touched").CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("CurrentUser error = %v", err)
	}
	if got != nil {
		t.Errorf("CurrentUser = %+v, want nil", got)
	}
}

func TestSession_ClearIdempotent(t *testing.T) {
	store := newTestStore(t, time.Hour)
	ctx := context.Background()
	sess := store.Session("sid-2")

	if err := sess.SetCurrentUser(ctx, &models.SanitizedUser{ID: 1, Account: "abcd"}); err != nil {
		t.Fatalf("SetCurrentUser error = %v", err)
	}

	if err := sess.ClearCurrentUser(ctx); err != nil {
		t.Fatalf("first ClearCurrentUser error = %v", err)
	}
	// 再清一次不报错
	if err := sess.ClearCurrentUser(ctx); err != nil {
		t.Fatalf("second ClearCurrentUser error = %v", err)
	}

	got, err := sess.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser error = %v", err)
	}
	if got != nil {
		t.Errorf("CurrentUser after clear = %+v, want nil", got)
	}
}

func TestSession_Isolation(t *testing.T) {
	store := newTestStore(t, time.Hour)
	ctx := context.Background()

	if err := store.Session("sid-a").SetCurrentUser(ctx, &models.SanitizedUser{ID: 1, Account: "aaaa"}); err != nil {
		t.Fatalf("SetCurrentUser error = %v", err)
	}

	got, err := store.Session("sid-b").CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser error = %v", err)
	}
	if got != nil {
		t.Errorf("other session sees login state: %+v", got)
	}
}

func TestSession_ExpiresWithTTL(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	store := NewStore(rdb, time.Minute)
	ctx := context.Background()
	sess := store.Session("sid-exp")

	if err := sess.SetCurrentUser(ctx, &models.SanitizedUser{ID: 7, Account: "abcd"}); err != nil {
		t.Fatalf("SetCurrentUser error = %v", err)
	}

	mr.FastForward(2 * time.Minute)

	got, err := sess.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser error = %v", err)
	}
	if got != nil {
		t.Errorf("login state survived past TTL: %+v", got)
	}
}
