package servicem8

import (
	"context"

	"fieldportal/models"

	"go.uber.org/zap"
)

// JobActivityByUUID returns the job activity with the given identifier, or
// nil when none exists.
func (c *Client) JobActivityByUUID(ctx context.Context, id string) (*models.JobActivity, error) {
	return getFirst[models.JobActivity](ctx, c, uuidFilterEndpoint("jobactivity", "uuid", id))
}

// JobByUUID returns the job with the given identifier, or nil when none
// exists.
func (c *Client) JobByUUID(ctx context.Context, id string) (*models.JobRecord, error) {
	return getFirst[models.JobRecord](ctx, c, uuidFilterEndpoint("job", "uuid", id))
}

// LocateBooking resolves an opaque booking identifier. Job activities take
// precedence: only when no activity matches is the identifier tried as a
// job. (nil, nil) means the booking genuinely does not exist; upstream
// faults come back as errors so callers can tell the two apart.
func (c *Client) LocateBooking(ctx context.Context, id string) (*models.BookingRecord, error) {
	activity, err := c.JobActivityByUUID(ctx, id)
	if err != nil {
		return nil, err
	}
	if activity != nil {
		c.logger.Debug("booking located as job activity", zap.String("uuid", id))
		return &models.BookingRecord{Kind: models.KindJobActivity, Activity: activity}, nil
	}

	job, err := c.JobByUUID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job != nil {
		c.logger.Debug("booking located as job", zap.String("uuid", id))
		return &models.BookingRecord{Kind: models.KindJob, Job: job}, nil
	}

	c.logger.Info("booking not found", zap.String("uuid", id))
	return nil, nil
}
