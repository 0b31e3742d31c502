package store

import "context"

// Mirror receives a copy of every saved snapshot.
type Mirror interface {
	Name() string
	Push(ctx context.Context, snap Snapshot) error
}
