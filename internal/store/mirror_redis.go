package store

import (
	"bytes"
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/rental-tracker/internal/models"
	"github.com/rogerio-castellano/rental-tracker/internal/redissvc"
)

// RedisMirror stores the snapshot document under key and rental counts per
// status in the hash key+":stats".
type RedisMirror struct {
	rdb *redis.Client
	key string
}

func NewRedisMirror(rs *redissvc.RedisService, key string) *RedisMirror {
	return &RedisMirror{rdb: rs.Rdb(), key: key}
}

func (m *RedisMirror) Name() string { return "redis" }

func (m *RedisMirror) StatsKey() string { return m.key + ":stats" }

func (m *RedisMirror) Push(ctx context.Context, snap Snapshot) error {
	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, snap); err != nil {
		return err
	}

	active, returned := 0, 0
	for _, r := range snap.Rentals {
		if r.Status == models.RentalActive {
			active++
		} else {
			returned++
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := m.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, m.key, buf.String(), 0)
		pipe.HSet(ctx, m.StatsKey(),
			"products", len(snap.Products),
			"rentals_active", active,
			"rentals_returned", returned,
			"saved_at", time.Now().UTC().Format(time.RFC3339),
		)
		return nil
	})
	return err
}

// Fetch reads back the last mirrored snapshot.
func (m *RedisMirror) Fetch(ctx context.Context) (Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	data, err := m.rdb.Get(ctx, m.key).Bytes()
	if err != nil {
		return Snapshot{}, err
	}
	return ReadSnapshot(bytes.NewReader(data))
}
