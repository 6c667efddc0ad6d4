package cron

import (
	"context"
	"log/slog"
	"time"
)

const RevokedTokenSweepJob = "revoked-token-sweep"

// RevocationPurger forgets revoked tokens that have expired.
type RevocationPurger interface {
	PurgeExpiredRevocations(now time.Time) int
}

// TokenJobs keeps the token revocation list from growing without bound.
type TokenJobs struct {
	purger RevocationPurger
	now    func() time.Time
}

func NewTokenJobs(purger RevocationPurger) *TokenJobs {
	return &TokenJobs{purger: purger, now: time.Now}
}

func (j *TokenJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob(RevokedTokenSweepJob, interval, j.SweepRevokedTokens)
}

func (j *TokenJobs) SweepRevokedTokens(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if removed := j.purger.PurgeExpiredRevocations(j.now()); removed > 0 {
		slog.Info("Revoked tokens swept", "removed", removed)
	}
	return nil
}
