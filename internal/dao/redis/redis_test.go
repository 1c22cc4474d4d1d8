package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func setup(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	InitWithAddr(mr.Addr())
	t.Cleanup(Close)
	return mr
}

func TestSetGetDel(t *testing.T) {
	setup(t)
	ctx := context.Background()

	if err := SetKeyEx(ctx, "verify_code:u1", "1234", 10*time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := GetKey(ctx, "verify_code:u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "1234" {
		t.Errorf("get = %q, want 1234", got)
	}

	if err := DelKeyIfExists(ctx, "verify_code:u1"); err != nil {
		t.Fatalf("del: %v", err)
	}
	got, err = GetKey(ctx, "verify_code:u1")
	if err != nil || got != "" {
		t.Errorf("after del: %q, %v; want empty, nil", got, err)
	}
}

// 键不存在不是错误，返回空串
func TestGetMissingKey(t *testing.T) {
	setup(t)

	got, err := GetKey(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if got != "" {
		t.Errorf("get missing = %q, want empty", got)
	}
}

// 删除不存在的键静默成功
func TestDelMissingKey(t *testing.T) {
	setup(t)

	if err := DelKeyIfExists(context.Background(), "nope"); err != nil {
		t.Errorf("del missing: %v", err)
	}
}

func TestTTLExpiry(t *testing.T) {
	mr := setup(t)
	ctx := context.Background()

	if err := SetKeyEx(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	// miniredis 的时钟手动推进，过期后按不存在处理
	mr.FastForward(2 * time.Minute)

	got, err := GetKey(ctx, "k")
	if err != nil || got != "" {
		t.Errorf("after expiry: %q, %v; want empty, nil", got, err)
	}
}
