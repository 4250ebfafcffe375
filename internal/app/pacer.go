package app

import (
	"context"

	"golang.org/x/time/rate"
)

// Pacer blocks until the next frame may start
type Pacer interface {
	Wait(ctx context.Context) error
}

// RatePacer caps the frame loop at a fixed number of frames per second.
// Burst is 1, so a slow frame is never followed by a catch-up burst.
type RatePacer struct {
	limiter *rate.Limiter
}

func NewPacer(fps int) *RatePacer {
	return &RatePacer{limiter: rate.NewLimiter(rate.Limit(fps), 1)}
}

func (p *RatePacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
