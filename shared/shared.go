package shared

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog/log"

	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
)

func BuildCacheKey(prefix, key string) string {
	if key == "" {
		return prefix
	}

	return fmt.Sprintf("%s:%s", prefix, key)
}

// BuildCacheKeyWithParts joins the non-empty parts into a deterministic key
// so equivalent queries always hit the same cache entry.
func BuildCacheKeyWithParts(prefix string, parts ...string) string {
	kept := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}

	if len(kept) == 0 {
		return prefix
	}

	return fmt.Sprintf("%s:%s", prefix, strings.Join(kept, ":"))
}

func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, BuildCacheKey(prefix, constant.Asterix)); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}
