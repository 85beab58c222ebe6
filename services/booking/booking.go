package booking

import (
	"context"
	"fmt"
	"time"

	"fieldportal/models"
	"fieldportal/utils"

	"go.uber.org/zap"
)

// ListForCustomer maps the customer-scoped job list into portal list entries.
func (s *DefaultBookingService) ListForCustomer(ctx context.Context, email, phone string) ([]ListEntry, error) {
	logger := utils.GetLogger()

	jobs, err := s.M8.JobsForCustomer(ctx, email, phone)
	if err != nil {
		return nil, err
	}
	logger.Debug("bookings fetched", zap.Int("count", len(jobs)))

	entries := make([]ListEntry, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		createdAt := job.CreatedTime()
		if createdAt == "" {
			createdAt = time.Now().UTC().Format(time.RFC3339)
		}
		entries = append(entries, ListEntry{
			ID:             job.UUID,
			JobNumber:      job.Number(),
			Title:          listTitle(job),
			Status:         job.DisplayStatus(),
			ScheduledStart: job.ScheduledStart,
			ScheduledEnd:   job.ScheduledEnd,
			Address:        job.Street(),
			City:           job.CityName(),
			State:          job.StateName(),
			CreatedAt:      createdAt,
		})
	}
	return entries, nil
}

func listTitle(job *models.JobRecord) string {
	if t := job.Title(); t != "" {
		return t
	}
	return "No title"
}

// Detail maps the aggregated booking into the response the front end renders.
func (s *DefaultBookingService) Detail(ctx context.Context, bookingID string) (*Detail, error) {
	agg, err := s.M8.BookingDetails(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if agg == nil {
		return nil, nil
	}

	attachments := make([]AttachmentEntry, 0, len(agg.Attachments))
	owner := bookingID
	if agg.Job != nil {
		owner = agg.Job.UUID
	}
	for i := range agg.Attachments {
		att := &agg.Attachments[i]
		attachments = append(attachments, AttachmentEntry{
			ID:        att.UUID,
			Filename:  att.DisplayName(),
			URL:       fmt.Sprintf("/api/attachments/%s/%s", owner, att.UUID),
			CreatedAt: att.Timestamp(),
		})
	}

	det := &Detail{
		Booking:     buildBookingView(agg),
		Attachments: attachments,
		Summary:     agg.Summary,
	}
	if agg.Job != nil {
		det.Job = &JobView{
			UUID:           agg.Job.UUID,
			JobNumber:      agg.Job.Number(),
			Status:         agg.Job.Status,
			Description:    agg.Job.Description,
			AddressStreet:  agg.Job.Street(),
			AddressCity:    agg.Job.CityName(),
			AddressState:   agg.Job.StateName(),
			ScheduledStart: agg.Job.ScheduledStart,
			ScheduledEnd:   agg.Job.ScheduledEnd,
		}
	}
	if agg.Customer != nil {
		det.Customer = &CustomerView{
			UUID:    agg.Customer.UUID,
			Name:    agg.Customer.Name,
			Email:   agg.Customer.Email,
			Phone:   agg.Customer.Phone,
			Mobile:  agg.Customer.Mobile,
			Address: agg.Customer.Address,
		}
	}
	return det, nil
}

func buildBookingView(agg *models.AggregatedBooking) BookingView {
	v := BookingView{
		ID:          agg.Booking.UUID(),
		Type:        string(agg.Booking.Kind),
		StartTime:   agg.Booking.StartTime(),
		EndTime:     agg.Booking.EndTime(),
		Notes:       agg.Booking.Notes(),
		Status:      agg.Booking.Status(),
		JobNumber:   agg.Summary.JobNumber,
		JobStatus:   agg.Summary.Status,
		Description: agg.Summary.Description,
	}
	if v.Description == "" {
		v.Description = "No description"
	}
	return v
}

// Attachments lists the attachments related directly to a booking
// identifier. Failures degrade to an empty list.
func (s *DefaultBookingService) Attachments(ctx context.Context, bookingID string) []AttachmentEntry {
	records := s.M8.AttachmentsByRelatedObject(ctx, bookingID)
	entries := make([]AttachmentEntry, 0, len(records))
	for i := range records {
		att := &records[i]
		entries = append(entries, AttachmentEntry{
			ID:        att.UUID,
			Filename:  att.DisplayName(),
			URL:       fmt.Sprintf("/api/attachments/%s/%s", bookingID, att.UUID),
			CreatedAt: att.Timestamp(),
		})
	}
	return entries
}
