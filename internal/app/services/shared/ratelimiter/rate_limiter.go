package ratelimiter

import (
	"context"
	"fmt"
	"hospital-portal-service/internal/app/services/shared/redis"
	"strings"
	"time"

	"go.uber.org/zap"
)

// SubmissionLimiter is a fixed-window counter stored in Redis with a TTL
// equal to the window duration. It throttles the unauthenticated
// registration-submission endpoint per client.
type SubmissionLimiter struct {
	redis redis.RedisRepository
	log   *zap.Logger
}

func NewSubmissionLimiter(redisRepository redis.RedisRepository, log *zap.Logger) *SubmissionLimiter {
	return &SubmissionLimiter{redis: redisRepository, log: log}
}

type AllowInput struct {
	// ClientKey identifies the submitter, typically the remote IP.
	ClientKey string
	// WindowDurationSec defines the fixed window length in seconds.
	WindowDurationSec int
	// MaxQuota is the max number of submissions allowed within the window.
	MaxQuota int
	// NowUTC is optional; if zero, time.Now().UTC() is used (useful for tests).
	NowUTC time.Time
}

type AllowOutput struct {
	Allowed        bool
	RetryAfterSecs int
}

// Allow enforces the fixed-window limit keyed by client and window id. When
// the quota is exceeded it reports Allowed=false with the seconds remaining
// until the next window boundary.
func (l *SubmissionLimiter) Allow(ctx context.Context, in *AllowInput) (*AllowOutput, error) {
	if in == nil {
		return &AllowOutput{Allowed: false}, fmt.Errorf("nil input")
	}

	clientKey := strings.TrimSpace(in.ClientKey)
	windowSec := in.WindowDurationSec
	maxQuota := in.MaxQuota
	if windowSec <= 0 {
		windowSec = 60
	}
	if maxQuota <= 0 {
		return &AllowOutput{Allowed: true}, nil
	}
	if clientKey == "" {
		return &AllowOutput{Allowed: false, RetryAfterSecs: windowSec}, nil
	}

	now := in.NowUTC
	if now.IsZero() {
		now = time.Now().UTC()
	}

	windowID := now.Unix() / int64(windowSec)
	key := fmt.Sprintf("SUBMISSION:%s:%d", clientKey, windowID)

	ttl := time.Duration(windowSec)*time.Second + time.Second
	newCount, err := l.redis.IncrementWithTTL(ctx, key, ttl)
	if err != nil {
		l.log.Error("SubmissionLimiter.Allow increment failed",
			zap.String("key", key),
			zap.Error(err))
		return &AllowOutput{Allowed: false}, err
	}

	nextWindowStart := (windowID + 1) * int64(windowSec)
	retryAfter := int(nextWindowStart-now.Unix()) + 1

	if newCount > int64(maxQuota) {
		return &AllowOutput{Allowed: false, RetryAfterSecs: retryAfter}, nil
	}

	return &AllowOutput{Allowed: true}, nil
}
