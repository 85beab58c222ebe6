package booking

import (
	"context"

	"fieldportal/models"
	"fieldportal/services/servicem8"
)

// BookingService is the portal-facing view over the ServiceM8 aggregation
// layer: upstream records in, UI shapes out.
type BookingService interface {
	// ListForCustomer returns booking list entries, scoped to the customer
	// resolved from email/phone when either is given.
	ListForCustomer(ctx context.Context, email, phone string) ([]ListEntry, error)

	// Detail returns the composed view of one booking, or nil when the
	// booking does not exist.
	Detail(ctx context.Context, bookingID string) (*Detail, error)

	// Attachments lists the attachment entries related to a booking. Never
	// fails: attachment data is supplementary.
	Attachments(ctx context.Context, bookingID string) []AttachmentEntry
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	M8 *servicem8.Client
}

// ListEntry is one row of the bookings list.
type ListEntry struct {
	ID             string `json:"id"`
	JobNumber      string `json:"jobNumber"`
	Title          string `json:"title"`
	Status         string `json:"status"`
	ScheduledStart string `json:"scheduledStart,omitempty"`
	ScheduledEnd   string `json:"scheduledEnd,omitempty"`
	Address        string `json:"address,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	CreatedAt      string `json:"createdAt"`
}

// BookingView is the booking-level slice of the detail response.
type BookingView struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
	Notes       string `json:"notes,omitempty"`
	Status      string `json:"status,omitempty"`
	JobNumber   string `json:"jobNumber"`
	JobStatus   string `json:"jobStatus"`
	Description string `json:"description"`
}

// JobView is the parent-job slice of the detail response.
type JobView struct {
	UUID           string `json:"uuid"`
	JobNumber      string `json:"jobNumber"`
	Status         string `json:"status,omitempty"`
	Description    string `json:"description,omitempty"`
	AddressStreet  string `json:"addressStreet,omitempty"`
	AddressCity    string `json:"addressCity,omitempty"`
	AddressState   string `json:"addressState,omitempty"`
	ScheduledStart string `json:"scheduledStart,omitempty"`
	ScheduledEnd   string `json:"scheduledEnd,omitempty"`
}

// CustomerView is the owning-customer slice of the detail response.
type CustomerView struct {
	UUID    string `json:"uuid"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Mobile  string `json:"mobile,omitempty"`
	Address string `json:"address,omitempty"`
}

// AttachmentEntry points the front end at the portal's own streaming route.
type AttachmentEntry struct {
	ID        string `json:"id"`
	Filename  string `json:"filename"`
	URL       string `json:"url"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Detail is the full composed booking response.
type Detail struct {
	Booking     BookingView           `json:"booking"`
	Job         *JobView              `json:"job"`
	Customer    *CustomerView         `json:"customer"`
	Attachments []AttachmentEntry     `json:"attachments"`
	Summary     models.BookingSummary `json:"summary"`
}
