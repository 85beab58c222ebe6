package servicem8

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"fieldportal/models"
)

// Customers finds company records matching the given email and/or phone.
// Both filters combine as AND at the upstream; the phone filter matches
// either the mobile or the landline field after digits-only normalization.
// No match is an empty slice, not an error. With neither filter given the
// upstream's unfiltered company list is returned.
func (c *Client) Customers(ctx context.Context, email, phone string) ([]models.CustomerRecord, error) {
	params := url.Values{}
	if email != "" {
		params.Add("filter[]", fmt.Sprintf("email = '%s'", email))
	}
	if phone != "" {
		digits := normalizePhone(phone)
		params.Add("filter[]", fmt.Sprintf("mobile = '%s' OR phone = '%s'", digits, digits))
	}

	endpoint := "/company.json"
	if q := params.Encode(); q != "" {
		endpoint += "?" + q
	}
	return getList[models.CustomerRecord](ctx, c, endpoint)
}

// CompanyByUUID returns the company with the given identifier, or nil when
// none exists.
func (c *Client) CompanyByUUID(ctx context.Context, id string) (*models.CustomerRecord, error) {
	return getFirst[models.CustomerRecord](ctx, c, uuidFilterEndpoint("company", "uuid", id))
}

// normalizePhone strips everything but digits so "(555) 123-4567" matches an
// upstream record stored as 5551234567.
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
