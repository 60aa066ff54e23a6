package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	srv := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: srv.Addr()})
}

func TestGetFromRedisReportsMissVsEmptyHit(t *testing.T) {
	ctx := context.Background()
	rdb := newTestRedis(t)

	var out []int
	cached, err := GetFromRedis(ctx, rdb, "missing", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cached {
		t.Error("missing key must not report a hit")
	}

	if err := SetToRedis(ctx, rdb, "empty", []int{}, time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cached, err = GetFromRedis(ctx, rdb, "empty", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cached {
		t.Error("cached empty list must report a hit")
	}
	if len(out) != 0 {
		t.Errorf("expected empty decoded list, got %v", out)
	}
}

func TestSetGetDeleteRoundTrip(t *testing.T) {
	ctx := context.Background()
	rdb := newTestRedis(t)

	type row struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}

	if err := SetToRedis(ctx, rdb, "rows", []row{{ID: 1, Name: "Ana"}}, time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rows []row
	cached, err := GetFromRedis(ctx, rdb, "rows", &rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cached || len(rows) != 1 || rows[0].Name != "Ana" {
		t.Errorf("unexpected cached rows: cached=%v rows=%v", cached, rows)
	}

	if err := DeleteFromRedis(ctx, rdb, "rows"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cached, err = GetFromRedis(ctx, rdb, "rows", &rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cached {
		t.Error("deleted key must report a miss")
	}
}
