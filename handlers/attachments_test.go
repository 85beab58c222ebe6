package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fieldportal/services/servicem8"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeM8 emulates the two upstream surfaces the attachment handlers touch:
// the attachment metadata resource and the binary file host.
func fakeM8(t *testing.T) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/attachment.json":
			filter := r.URL.Query().Get("$filter")
			w.Header().Set("Content-Type", "application/json")
			if strings.Contains(filter, "'a1'") {
				fmt.Fprintf(w, `[{"uuid":"a1","file_name":"site-photo.jpg","file_url":"%s/files/a1","related_object_uuid":"j1","file_size":2048,"content_type":"image/jpeg"}]`, srv.URL)
				return
			}
			fmt.Fprint(w, `[]`)
		case r.URL.Path == "/files/a1":
			w.Header().Set("Content-Type", "image/jpeg")
			w.Header().Set("Content-Disposition", `attachment; filename="site-photo.jpg"`)
			fmt.Fprint(w, "JPEGDATA")
		case strings.HasPrefix(r.URL.Path, "/attachment/"):
			w.Header().Set("Content-Type", "application/pdf")
			fmt.Fprint(w, "PDFDATA")
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newAttachmentRouter(m8 *servicem8.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAttachmentHandler(m8)
	r := gin.New()
	r.GET("/api/attachments/:bookingId/:attachmentId", h.StreamAttachmentHandler)
	r.GET("/api/attachments/:bookingId/:attachmentId/metadata", h.GetAttachmentMetadataHandler)
	return r
}

func TestGetAttachmentMetadataHandler(t *testing.T) {
	srv := fakeM8(t)
	r := newAttachmentRouter(servicem8.New("test-key", srv.URL))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/attachments/b1/a1/metadata", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "a1", got["id"])
	assert.Equal(t, "site-photo.jpg", got["filename"])
	assert.Equal(t, "/api/attachments/b1/a1", got["downloadUrl"])
	assert.Equal(t, "image/jpeg", got["contentType"])
	assert.NotNil(t, got["metadata"])
}

func TestGetAttachmentMetadataHandlerNotFound(t *testing.T) {
	srv := fakeM8(t)
	r := newAttachmentRouter(servicem8.New("test-key", srv.URL))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/attachments/b1/missing/metadata", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStreamAttachmentHandlerForwardsUpstreamHeaders(t *testing.T) {
	srv := fakeM8(t)
	r := newAttachmentRouter(servicem8.New("test-key", srv.URL))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/attachments/b1/a1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "JPEGDATA", w.Body.String())
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="site-photo.jpg"`, w.Header().Get("Content-Disposition"))
}

func TestStreamAttachmentHandlerDefaultDisposition(t *testing.T) {
	// The unknown attachment falls through to the generic /attachment/<id>
	// endpoint, which answers without a Content-Disposition header.
	srv := fakeM8(t)
	r := newAttachmentRouter(servicem8.New("test-key", srv.URL))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/attachments/b1/doc9", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PDFDATA", w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `inline; filename="doc9"`, w.Header().Get("Content-Disposition"))
}

func TestStreamAttachmentHandlerNotConfigured(t *testing.T) {
	r := newAttachmentRouter(servicem8.New("", ""))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/attachments/b1/a1", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
