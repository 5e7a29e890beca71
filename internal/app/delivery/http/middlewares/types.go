package middlewares

import (
	"hospital-portal-service/internal/app/config"
	"hospital-portal-service/internal/app/services/shared/ratelimiter"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig

	// SubmissionLimiter is nil when Redis never connected; the submission
	// endpoint then runs unthrottled apart from the global IP limit.
	SubmissionLimiter *ratelimiter.SubmissionLimiter
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig, submissionLimiter *ratelimiter.SubmissionLimiter) *Middlewares {
	return &Middlewares{
		Log:               logger,
		InternalConfig:    internalConfig,
		SubmissionLimiter: submissionLimiter,
	}
}
