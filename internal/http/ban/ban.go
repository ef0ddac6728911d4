package ban

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-app/internal/redissvc"
)

const (
	strikeWindow = time.Hour
	banThreshold = 10
	banDuration  = 15 * time.Minute
)

var (
	rdb *redis.Client
	ctx context.Context
)

func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}

// Enabled reports whether strike bookkeeping is available.
func Enabled() bool {
	return rdb != nil
}

// RegisterStrike records one rate-limit violation for ip. Crossing the
// threshold inside the strike window bans the ip for banDuration.
func RegisterStrike(ip, route string) {
	if !Enabled() {
		return
	}

	key := fmt.Sprintf("ratelimit:strikes:%s", ip)
	strikes, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		zap.L().Warn("failed to record strike", zap.String("ip", ip), zap.Error(err))
		return
	}
	if strikes == 1 {
		rdb.Expire(ctx, key, strikeWindow)
	}

	if strikes >= banThreshold {
		if err := rdb.Set(ctx, banKey(ip), route, banDuration).Err(); err != nil {
			zap.L().Warn("failed to ban ip", zap.String("ip", ip), zap.Error(err))
			return
		}
		zap.L().Warn("ip banned for repeated rate-limit violations",
			zap.String("ip", ip),
			zap.String("route", route),
			zap.Int64("strikes", strikes),
			zap.Duration("duration", banDuration),
		)
	}
}

// IsBanned reports whether ip currently sits on the ban list.
func IsBanned(ip string) bool {
	if !Enabled() {
		return false
	}
	n, err := rdb.Exists(ctx, banKey(ip)).Result()
	if err != nil {
		zap.L().Warn("failed to check ban list", zap.String("ip", ip), zap.Error(err))
		return false
	}
	return n > 0
}

func banKey(ip string) string {
	return fmt.Sprintf("ratelimit:ban:%s", ip)
}
