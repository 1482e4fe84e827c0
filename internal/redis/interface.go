package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient to allow for easy substitution
type Client interface {
	redis.UniversalClient
}
