package servicem8

import (
	"context"
	"fmt"
	"net/url"

	"fieldportal/models"

	"go.uber.org/zap"
)

// BookingDetails composes the full UI-ready view of one booking: locate the
// record, expand its job and customer relations, list attachments against
// the resolved owning job, and derive the summary. (nil, nil) means the
// booking does not exist; upstream faults on the load-bearing lookups
// propagate.
func (c *Client) BookingDetails(ctx context.Context, bookingID string) (*models.AggregatedBooking, error) {
	booking, err := c.LocateBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, nil
	}

	job, customer, err := c.ExpandBooking(ctx, booking)
	if err != nil {
		return nil, err
	}

	// Attachments hang off the job, not the activity: prefer the resolved
	// job's identifier, fall back to the booking's own job link.
	ownerID := booking.JobLink()
	if job != nil {
		ownerID = job.UUID
	}
	attachments := []models.AttachmentRecord{}
	if ownerID != "" {
		attachments = c.AttachmentsByRelatedObject(ctx, ownerID)
	}

	return &models.AggregatedBooking{
		Booking:     booking,
		Job:         job,
		Customer:    customer,
		Attachments: attachments,
		Summary:     buildSummary(booking, job, customer, len(attachments)),
	}, nil
}

// buildSummary derives the digest fields with their fixed precedence order.
func buildSummary(booking *models.BookingRecord, job *models.JobRecord, customer *models.CustomerRecord, attachmentCount int) models.BookingSummary {
	s := models.BookingSummary{
		BookingID:       booking.UUID(),
		JobNumber:       "N/A",
		Status:          "Unknown",
		CustomerName:    "Unknown",
		StartTime:       booking.StartTime(),
		EndTime:         booking.EndTime(),
		Description:     booking.Notes(),
		AttachmentCount: attachmentCount,
	}

	if job != nil {
		s.JobID = job.UUID
		s.JobNumber = job.Number()
		if job.Description != "" {
			s.Description = job.Description
		}
	}

	switch {
	case job != nil && job.Status != "":
		s.Status = job.Status
	case booking.Status() != "":
		s.Status = booking.Status()
	}

	if customer != nil {
		if customer.Name != "" {
			s.CustomerName = customer.Name
		}
		s.CustomerEmail = customer.Email
		s.CustomerPhone = customer.PreferredPhone()
	}

	return s
}

// JobsForCustomer lists jobs, scoped to the customer resolved from the given
// email and/or phone. A filter that matches no customer yields an empty list
// on purpose: a caller whose identity is unknown upstream must never see the
// unfiltered booking set. Resolution faults degrade the same way. With no
// filter at all, the unfiltered job list is returned.
func (c *Client) JobsForCustomer(ctx context.Context, email, phone string) ([]models.JobRecord, error) {
	params := url.Values{}

	if email != "" || phone != "" {
		customers, err := c.Customers(ctx, email, phone)
		if err != nil {
			c.logger.Warn("customer resolution failed, returning no bookings",
				zap.String("email", email), zap.Error(err))
			return []models.JobRecord{}, nil
		}
		if len(customers) == 0 {
			c.logger.Info("no matching customer, returning no bookings",
				zap.String("email", email))
			return []models.JobRecord{}, nil
		}
		params.Add("filter[]", fmt.Sprintf("company_uuid = '%s'", customers[0].UUID))
	}

	endpoint := "/job.json"
	if q := params.Encode(); q != "" {
		endpoint += "?" + q
	}
	jobs, err := getList[models.JobRecord](ctx, c, endpoint)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []models.JobRecord{}
	}
	return jobs, nil
}
