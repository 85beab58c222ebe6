package handlers

import (
	"fmt"
	"io"
	"net/http"

	"fieldportal/models"
	"fieldportal/services/servicem8"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AttachmentHandler proxies attachment binaries and metadata from ServiceM8.
type AttachmentHandler struct {
	M8 *servicem8.Client
}

func NewAttachmentHandler(m8 *servicem8.Client) *AttachmentHandler {
	return &AttachmentHandler{M8: m8}
}

// attachmentMetadataResponse is the normalized metadata view.
type attachmentMetadataResponse struct {
	ID                string                   `json:"id"`
	Filename          string                   `json:"filename"`
	FileURL           string                   `json:"fileUrl,omitempty"`
	RelatedObjectUUID string                   `json:"relatedObjectUuid,omitempty"`
	CreatedAt         string                   `json:"createdAt,omitempty"`
	FileSize          int64                    `json:"fileSize,omitempty"`
	ContentType       string                   `json:"contentType,omitempty"`
	DownloadURL       string                   `json:"downloadUrl"`
	Metadata          *models.AttachmentRecord `json:"metadata"`
}

// GetAttachmentMetadataHandler handles GET /api/attachments/:bookingId/:attachmentId/metadata.
func (h *AttachmentHandler) GetAttachmentMetadataHandler(c *gin.Context) {
	logger := getLogger(c)
	bookingID := c.Param("bookingId")
	attachmentID := c.Param("attachmentId")

	att, err := h.M8.AttachmentByUUID(c.Request.Context(), attachmentID)
	if err != nil {
		logger.Error("Failed to fetch attachment metadata",
			zap.String("attachmentId", attachmentID), zap.Error(err))
		c.JSON(upstreamStatus(err), gin.H{"error": "Failed to fetch attachment metadata"})
		return
	}
	if att == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Attachment not found"})
		return
	}

	c.JSON(http.StatusOK, attachmentMetadataResponse{
		ID:                att.UUID,
		Filename:          att.DisplayName(),
		FileURL:           att.FileURL,
		RelatedObjectUUID: att.RelatedObjectUUID,
		CreatedAt:         att.Timestamp(),
		FileSize:          att.FileSize,
		ContentType:       att.ContentType,
		DownloadURL:       fmt.Sprintf("/api/attachments/%s/%s", bookingID, attachmentID),
		Metadata:          att,
	})
}

// StreamAttachmentHandler handles GET /api/attachments/:bookingId/:attachmentId.
// The binary is forwarded chunk by chunk as it arrives from the upstream, so
// a slow client throttles the upstream read instead of buffering the file.
func (h *AttachmentHandler) StreamAttachmentHandler(c *gin.Context) {
	logger := getLogger(c)
	bookingID := c.Param("bookingId")
	attachmentID := c.Param("attachmentId")
	ctx := c.Request.Context()

	fetchURL, err := h.M8.ResolveAttachmentURL(ctx, bookingID, attachmentID)
	if err != nil {
		logger.Error("Failed to resolve attachment URL",
			zap.String("attachmentId", attachmentID), zap.Error(err))
		c.JSON(upstreamStatus(err), gin.H{"error": "Failed to fetch attachment"})
		return
	}

	resp, err := h.M8.FetchBinary(ctx, fetchURL)
	if err != nil {
		logger.Error("Failed to fetch attachment binary",
			zap.String("url", fetchURL), zap.Error(err))
		c.JSON(upstreamStatus(err), gin.H{"error": "Failed to fetch attachment"})
		return
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)

	disposition := resp.Header.Get("Content-Disposition")
	if disposition == "" {
		disposition = fmt.Sprintf("inline; filename=%q", attachmentID)
	}
	c.Header("Content-Disposition", disposition)

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, resp.Body); err != nil {
		// Headers are already sent; all we can do is log the broken stream.
		logger.Warn("Attachment stream interrupted",
			zap.String("attachmentId", attachmentID), zap.Error(err))
	}
}
