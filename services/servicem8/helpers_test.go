package servicem8

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fieldportal/models"
)

// newTestClient points a configured Client at an httptest server.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New("test-key", srv.URL)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// parseEqFilter splits a "$filter=field eq 'value'" expression.
func parseEqFilter(s string) (field, value string) {
	parts := strings.SplitN(s, " eq ", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return strings.TrimSpace(parts[0]), strings.Trim(strings.TrimSpace(parts[1]), "'")
}

// parseListFilter splits a "filter[]=field = 'value'" expression.
func parseListFilter(s string) (field, value string) {
	parts := strings.SplitN(s, " = ", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return strings.TrimSpace(parts[0]), strings.Trim(strings.TrimSpace(parts[1]), "'")
}

// fakeUpstream emulates the slice of the ServiceM8 API this layer consumes:
// list endpoints per resource with equality/OR filter expressions.
type fakeUpstream struct {
	activities  []models.JobActivity
	jobs        []models.JobRecord
	companies   []models.CustomerRecord
	attachments []models.AttachmentRecord
}

func (f *fakeUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	switch r.URL.Path {
	case "/jobactivity.json":
		out := []models.JobActivity{}
		_, uuid := parseEqFilter(q.Get("$filter"))
		for _, a := range f.activities {
			if uuid == "" || a.UUID == uuid {
				out = append(out, a)
			}
		}
		writeJSON(w, out)

	case "/job.json":
		out := []models.JobRecord{}
		if filter := q.Get("$filter"); filter != "" {
			_, uuid := parseEqFilter(filter)
			for _, j := range f.jobs {
				if j.UUID == uuid {
					out = append(out, j)
				}
			}
		} else if filters := q["filter[]"]; len(filters) > 0 {
			_, company := parseListFilter(filters[0])
			for _, j := range f.jobs {
				if j.CompanyUUID == company {
					out = append(out, j)
				}
			}
		} else {
			out = f.jobs
		}
		writeJSON(w, out)

	case "/company.json":
		out := []models.CustomerRecord{}
		if filter := q.Get("$filter"); filter != "" {
			_, uuid := parseEqFilter(filter)
			for _, c := range f.companies {
				if c.UUID == uuid {
					out = append(out, c)
				}
			}
		} else {
			for _, c := range f.companies {
				if matchCompany(q["filter[]"], c) {
					out = append(out, c)
				}
			}
		}
		writeJSON(w, out)

	case "/attachment.json":
		out := []models.AttachmentRecord{}
		field, value := parseEqFilter(q.Get("$filter"))
		for _, a := range f.attachments {
			switch field {
			case "uuid":
				if a.UUID == value {
					out = append(out, a)
				}
			case "related_object_uuid":
				if a.RelatedObjectUUID == value {
					out = append(out, a)
				}
			}
		}
		writeJSON(w, out)

	default:
		http.NotFound(w, r)
	}
}

// matchCompany applies list filters the way the upstream does: every
// filter[] entry must hold, OR-clauses within one entry match any side.
func matchCompany(filters []string, c models.CustomerRecord) bool {
	for _, f := range filters {
		if strings.Contains(f, " OR ") {
			matched := false
			for _, clause := range strings.Split(f, " OR ") {
				field, value := parseListFilter(clause)
				if (field == "mobile" && c.Mobile == value) || (field == "phone" && c.Phone == value) {
					matched = true
				}
			}
			if !matched {
				return false
			}
			continue
		}
		field, value := parseListFilter(f)
		if field == "email" && c.Email != value {
			return false
		}
	}
	return true
}
