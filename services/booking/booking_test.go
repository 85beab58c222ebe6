package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldportal/models"
	"fieldportal/services/servicem8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newService points a DefaultBookingService at a canned upstream.
func newService(t *testing.T, handler http.HandlerFunc) *DefaultBookingService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &DefaultBookingService{M8: servicem8.New("test-key", srv.URL)}
}

func respond(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestListForCustomerMapsFields(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/job.json", r.URL.Path)
		respond(w, []models.JobRecord{
			{
				UUID:           "j1",
				GeneratedJobID: "0042",
				Status:         "Quote",
				Description:    "Fix fence",
				AddressStreet:  "1 Main St",
				ScheduledStart: "2026-05-01 10:00:00",
				Created:        "2026-04-20 12:00:00",
			},
			{UUID: "j2"},
		})
	})

	entries, err := svc.ListForCustomer(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "j1", entries[0].ID)
	assert.Equal(t, "0042", entries[0].JobNumber)
	assert.Equal(t, "Fix fence", entries[0].Title)
	assert.Equal(t, "Quote", entries[0].Status)
	assert.Equal(t, "1 Main St", entries[0].Address)
	assert.Equal(t, "2026-04-20 12:00:00", entries[0].CreatedAt)

	// Every fallback bottoms out on the bare record.
	assert.Equal(t, "N/A", entries[1].JobNumber)
	assert.Equal(t, "No title", entries[1].Title)
	assert.Equal(t, "Unknown", entries[1].Status)
	assert.NotEmpty(t, entries[1].CreatedAt)
}

func TestListForCustomerPropagatesFault(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := svc.ListForCustomer(context.Background(), "", "")
	var apiErr *servicem8.APIError
	require.ErrorAs(t, err, &apiErr)
}

func TestDetailNotFound(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		respond(w, []any{})
	})

	det, err := svc.Detail(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, det)
}

func TestDetailMapsAttachmentsAgainstJob(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		filter := r.URL.Query().Get("$filter")
		switch r.URL.Path {
		case "/jobactivity.json":
			respond(w, []models.JobActivity{{UUID: "b1", JobUUID: "j1", Notes: "side door"}})
		case "/job.json":
			respond(w, []models.JobRecord{{UUID: "j1", JobNumber: "77", CompanyUUID: "c1"}})
		case "/company.json":
			respond(w, []models.CustomerRecord{{UUID: "c1", Name: "Acme", Mobile: "555"}})
		case "/attachment.json":
			require.Contains(t, filter, "related_object_uuid")
			require.Contains(t, filter, "'j1'")
			respond(w, []models.AttachmentRecord{{UUID: "a1", FileName: "roof.jpg", EditDate: "2026-01-02"}})
		default:
			http.NotFound(w, r)
		}
	})

	det, err := svc.Detail(context.Background(), "b1")
	require.NoError(t, err)
	require.NotNil(t, det)

	assert.Equal(t, "b1", det.Booking.ID)
	assert.Equal(t, "jobactivity", det.Booking.Type)
	assert.Equal(t, "77", det.Booking.JobNumber)
	assert.Equal(t, "side door", det.Booking.Description)

	require.NotNil(t, det.Job)
	assert.Equal(t, "77", det.Job.JobNumber)
	require.NotNil(t, det.Customer)
	assert.Equal(t, "Acme", det.Customer.Name)

	require.Len(t, det.Attachments, 1)
	assert.Equal(t, "roof.jpg", det.Attachments[0].Filename)
	assert.Equal(t, "/api/attachments/j1/a1", det.Attachments[0].URL)
	assert.Equal(t, "2026-01-02", det.Attachments[0].CreatedAt)
}

func TestAttachmentsDegradeToEmpty(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	entries := svc.Attachments(context.Background(), "b1")
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestAttachmentsMapEntries(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		respond(w, []models.AttachmentRecord{{UUID: "a1", AltFileName: "site.png", Created: "2026-02-02"}})
	})

	entries := svc.Attachments(context.Background(), "b1")
	require.Len(t, entries, 1)
	assert.Equal(t, "site.png", entries[0].Filename)
	assert.Equal(t, "/api/attachments/b1/a1", entries[0].URL)
	assert.Equal(t, "2026-02-02", entries[0].CreatedAt)
}
