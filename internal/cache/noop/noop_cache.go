package noop

import (
	"context"
	"time"

	"gstbill/internal/port"
)

type noopCache struct{}

// NewCache returns a cache that never stores anything; every Get is a miss.
func NewCache() port.Cache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (noopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (noopCache) Delete(context.Context, ...string) error { return nil }

func (noopCache) Ping(context.Context) error { return nil }
