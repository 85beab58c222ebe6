package servicem8

import (
	"context"
	"errors"
	"fmt"

	"fieldportal/models"

	"go.uber.org/zap"
)

// AttachmentsByRelatedObject lists attachment metadata for a job or activity.
// Attachments are supplementary data, so every upstream fault degrades to an
// empty slice rather than an error.
func (c *Client) AttachmentsByRelatedObject(ctx context.Context, objectID string) []models.AttachmentRecord {
	endpoint := uuidFilterEndpoint("attachment", "related_object_uuid", objectID)
	list, err := getList[models.AttachmentRecord](ctx, c, endpoint)
	if err != nil {
		c.logger.Warn("attachment listing failed, returning empty",
			zap.String("relatedObjectUUID", objectID), zap.Error(err))
		return []models.AttachmentRecord{}
	}
	if list == nil {
		return []models.AttachmentRecord{}
	}
	return list
}

// AttachmentByUUID returns the attachment metadata with the given
// identifier, or nil when none exists.
func (c *Client) AttachmentByUUID(ctx context.Context, id string) (*models.AttachmentRecord, error) {
	return getFirst[models.AttachmentRecord](ctx, c, uuidFilterEndpoint("attachment", "uuid", id))
}

// ResolveAttachmentURL determines a fetchable binary URL for an attachment.
// ServiceM8 represents photo-type and document-type attachments differently
// and metadata availability is not guaranteed, hence the ordered fallback:
//
//	(a) metadata found and it carries file_url: use it
//	(b) metadata found (or absent) without file_url: generic attachment endpoint
//	(c) metadata lookup rejected by the upstream: job-photo endpoint scoped
//	    to the booking
//
// Transport failures and a missing API key still propagate.
func (c *Client) ResolveAttachmentURL(ctx context.Context, bookingID, attachmentID string) (string, error) {
	att, err := c.AttachmentByUUID(ctx, attachmentID)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			url := fmt.Sprintf("%s/job/%s/photo/%s", c.baseURL, bookingID, attachmentID)
			c.logger.Info("attachment metadata rejected, using job photo URL",
				zap.String("attachmentUUID", attachmentID), zap.String("url", url))
			return url, nil
		}
		return "", err
	}

	if att != nil && att.FileURL != "" {
		c.logger.Debug("attachment has file_url", zap.String("url", att.FileURL))
		return att.FileURL, nil
	}

	url := fmt.Sprintf("%s/attachment/%s", c.baseURL, attachmentID)
	c.logger.Info("attachment metadata lacks file_url, using fallback URL",
		zap.String("attachmentUUID", attachmentID), zap.String("url", url))
	return url, nil
}
