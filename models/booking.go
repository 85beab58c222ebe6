// models/booking.go
package models

// BookingKind tags which variant of a BookingRecord is populated. ServiceM8
// shares one identifier space between scheduled visits (job activities) and
// work orders (jobs), so a booking ID can resolve to either.
type BookingKind string

const (
	KindJobActivity BookingKind = "jobactivity"
	KindJob         BookingKind = "job"
)

// JobActivity is a ServiceM8 scheduled visit.
type JobActivity struct {
	UUID           string `json:"uuid"`
	JobUUID        string `json:"job_uuid"`
	CompanyUUID    string `json:"company_uuid"`
	StartDTS       string `json:"start_dts"`
	EndDTS         string `json:"end_dts"`
	ScheduledStart string `json:"scheduled_start"`
	ScheduledEnd   string `json:"scheduled_end"`
	Notes          string `json:"notes"`
	Status         string `json:"status"`
	EditDate       string `json:"edit_date"`
}

// JobRecord is a ServiceM8 work order. ServiceM8 is not consistent about
// field names between its list and detail representations, so the struct
// carries every spelling we have seen and the methods below pick through
// them in a fixed order.
type JobRecord struct {
	UUID           string `json:"uuid"`
	GeneratedJobID string `json:"generated_job_id"`
	JobNumber      string `json:"job_number"`
	Status         string `json:"status"`
	JobStatus      string `json:"job_status"`
	Description    string `json:"job_description"`
	AltDescription string `json:"description"`
	AddressStreet  string `json:"job_address"`
	AltStreet      string `json:"address_street"`
	Address        string `json:"address"`
	AddressCity    string `json:"billing_address_city"`
	AltCity        string `json:"address_city"`
	City           string `json:"city"`
	AddressState   string `json:"billing_address_state"`
	AltState       string `json:"address_state"`
	State          string `json:"state"`
	ScheduledStart string `json:"scheduled_start"`
	ScheduledEnd   string `json:"scheduled_end"`
	CompanyUUID    string `json:"company_uuid"`
	Created        string `json:"created"`
	CreatedAt      string `json:"created_at"`
}

// Number returns the human-facing job number: generated_job_id, then
// job_number, then "N/A".
func (j *JobRecord) Number() string {
	if j.GeneratedJobID != "" {
		return j.GeneratedJobID
	}
	if j.JobNumber != "" {
		return j.JobNumber
	}
	return "N/A"
}

// Title returns the job description under either field name.
func (j *JobRecord) Title() string {
	if j.Description != "" {
		return j.Description
	}
	return j.AltDescription
}

// DisplayStatus returns job_status, then status, then "Unknown".
func (j *JobRecord) DisplayStatus() string {
	if j.JobStatus != "" {
		return j.JobStatus
	}
	if j.Status != "" {
		return j.Status
	}
	return "Unknown"
}

// Street returns the job address under any of its spellings.
func (j *JobRecord) Street() string {
	if j.AddressStreet != "" {
		return j.AddressStreet
	}
	if j.AltStreet != "" {
		return j.AltStreet
	}
	return j.Address
}

// CityName returns the job city under any of its spellings.
func (j *JobRecord) CityName() string {
	if j.AddressCity != "" {
		return j.AddressCity
	}
	if j.AltCity != "" {
		return j.AltCity
	}
	return j.City
}

// StateName returns the job state under any of its spellings.
func (j *JobRecord) StateName() string {
	if j.AddressState != "" {
		return j.AddressState
	}
	if j.AltState != "" {
		return j.AltState
	}
	return j.State
}

// CreatedTime returns the creation timestamp under either field name, or ""
// when the upstream sent neither.
func (j *JobRecord) CreatedTime() string {
	if j.Created != "" {
		return j.Created
	}
	return j.CreatedAt
}

// BookingRecord is a resolved booking: exactly one of Activity or Job is
// populated, and Kind says which. Consumers must switch on Kind rather than
// probe for fields.
type BookingRecord struct {
	Kind     BookingKind  `json:"kind"`
	Activity *JobActivity `json:"activity,omitempty"`
	Job      *JobRecord   `json:"job,omitempty"`
}

// UUID returns the booking's own identifier.
func (b *BookingRecord) UUID() string {
	switch b.Kind {
	case KindJobActivity:
		return b.Activity.UUID
	case KindJob:
		return b.Job.UUID
	}
	return ""
}

// JobLink returns the identifier of the job this booking belongs to: the
// parent-job link for an activity, the booking's own identifier for a job.
func (b *BookingRecord) JobLink() string {
	switch b.Kind {
	case KindJobActivity:
		return b.Activity.JobUUID
	case KindJob:
		return b.Job.UUID
	}
	return ""
}

// CompanyUUID returns the booking's own company link, if any.
func (b *BookingRecord) CompanyUUID() string {
	switch b.Kind {
	case KindJobActivity:
		return b.Activity.CompanyUUID
	case KindJob:
		return b.Job.CompanyUUID
	}
	return ""
}

// StartTime returns the booking-native start, falling back to the generic
// scheduled start.
func (b *BookingRecord) StartTime() string {
	switch b.Kind {
	case KindJobActivity:
		if b.Activity.StartDTS != "" {
			return b.Activity.StartDTS
		}
		return b.Activity.ScheduledStart
	case KindJob:
		return b.Job.ScheduledStart
	}
	return ""
}

// EndTime returns the booking-native end, falling back to the generic
// scheduled end.
func (b *BookingRecord) EndTime() string {
	switch b.Kind {
	case KindJobActivity:
		if b.Activity.EndDTS != "" {
			return b.Activity.EndDTS
		}
		return b.Activity.ScheduledEnd
	case KindJob:
		return b.Job.ScheduledEnd
	}
	return ""
}

// Notes returns the free-text notes; only activities carry them.
func (b *BookingRecord) Notes() string {
	switch b.Kind {
	case KindJobActivity:
		return b.Activity.Notes
	case KindJob:
		return ""
	}
	return ""
}

// Status returns the booking's own status string.
func (b *BookingRecord) Status() string {
	switch b.Kind {
	case KindJobActivity:
		return b.Activity.Status
	case KindJob:
		return b.Job.Status
	}
	return ""
}

// CustomerRecord is a ServiceM8 company. Optional at every use site: a
// missing customer must never fail an aggregate.
type CustomerRecord struct {
	UUID    string `json:"uuid"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Mobile  string `json:"mobile"`
	Address string `json:"address"`
}

// PreferredPhone returns the mobile number, falling back to the landline.
func (c *CustomerRecord) PreferredPhone() string {
	if c.Mobile != "" {
		return c.Mobile
	}
	return c.Phone
}

// AttachmentRecord is file metadata attached to a job or activity.
type AttachmentRecord struct {
	UUID              string `json:"uuid"`
	FileName          string `json:"file_name"`
	AltFileName       string `json:"filename"`
	FileURL           string `json:"file_url"`
	RelatedObjectUUID string `json:"related_object_uuid"`
	FileSize          int64  `json:"file_size,omitempty"`
	ContentType       string `json:"content_type,omitempty"`
	EditDate          string `json:"edit_date"`
	Created           string `json:"created"`
}

// DisplayName returns file_name, then filename, then "attachment".
func (a *AttachmentRecord) DisplayName() string {
	if a.FileName != "" {
		return a.FileName
	}
	if a.AltFileName != "" {
		return a.AltFileName
	}
	return "attachment"
}

// Timestamp returns edit_date, falling back to created.
func (a *AttachmentRecord) Timestamp() string {
	if a.EditDate != "" {
		return a.EditDate
	}
	return a.Created
}

// BookingSummary is the derived, UI-ready digest of an aggregated booking.
type BookingSummary struct {
	BookingID       string `json:"bookingId"`
	JobID           string `json:"jobId,omitempty"`
	JobNumber       string `json:"jobNumber"`
	Status          string `json:"status"`
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail,omitempty"`
	CustomerPhone   string `json:"customerPhone,omitempty"`
	StartTime       string `json:"startTime,omitempty"`
	EndTime         string `json:"endTime,omitempty"`
	Description     string `json:"description,omitempty"`
	AttachmentCount int    `json:"attachmentCount"`
}

// AggregatedBooking joins a booking with its parent job, owning customer and
// attachments. Job and Customer are nil when the relations do not exist.
type AggregatedBooking struct {
	Booking     *BookingRecord     `json:"booking"`
	Job         *JobRecord         `json:"job,omitempty"`
	Customer    *CustomerRecord    `json:"customer,omitempty"`
	Attachments []AttachmentRecord `json:"attachments"`
	Summary     BookingSummary     `json:"summary"`
}
