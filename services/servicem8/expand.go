package servicem8

import (
	"context"

	"fieldportal/models"

	"go.uber.org/zap"
)

// ExpandBooking fetches the relations of a located booking: the parent job
// (for an activity that carries a job link; a job is its own job) and the
// owning company. The job fetch is load-bearing and its faults propagate.
// The customer is supplementary: a failed company lookup degrades to nil.
func (c *Client) ExpandBooking(ctx context.Context, booking *models.BookingRecord) (*models.JobRecord, *models.CustomerRecord, error) {
	var job *models.JobRecord
	switch booking.Kind {
	case models.KindJobActivity:
		if booking.Activity.JobUUID != "" {
			j, err := c.JobByUUID(ctx, booking.Activity.JobUUID)
			if err != nil {
				return nil, nil, err
			}
			job = j
		}
	case models.KindJob:
		job = booking.Job
	}

	// The job's company link wins; the booking's own link is the fallback.
	companyUUID := ""
	if job != nil {
		companyUUID = job.CompanyUUID
	}
	if companyUUID == "" {
		companyUUID = booking.CompanyUUID()
	}

	var customer *models.CustomerRecord
	if companyUUID != "" {
		cust, err := c.CompanyByUUID(ctx, companyUUID)
		if err != nil {
			c.logger.Warn("company lookup failed, continuing without customer",
				zap.String("companyUUID", companyUUID), zap.Error(err))
		} else {
			customer = cust
		}
	}

	return job, customer, nil
}
