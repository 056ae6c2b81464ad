package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Event kinds.
const (
	KindRecommend = "recommend"
	KindGuide     = "guide"
)

// Event records one recommendation or guide request for history lookups.
type Event struct {
	ID        string
	UserID    string
	Kind      string // "recommend" or "guide"
	Query     string // skills searched or repository targeted
	TopResult string // best recommendation or guide summary preview
	CreatedAt time.Time
}
