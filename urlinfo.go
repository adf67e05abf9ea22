package webmcp

import (
	"context"
	"encoding/json"
)

// PreviewContentLength bounds the content preview attached to URL info.
const PreviewContentLength = 500

// Unknown is reported for response headers that were not sent.
const Unknown = "unknown"

// URLInfo describes a URL as seen by a metadata-only request. A non-empty
// Error means the inspection failed and the remaining fields are meaningless.
type URLInfo struct {
	URL           string
	StatusCode    int
	ContentType   string
	ContentLength string
	Server        string
	LastModified  string

	// ContentPreview is set for HTML pages only.
	ContentPreview *string

	// Page metadata, set for HTML pages that declare it.
	Title       string
	Description string
	SiteName    string

	Error string
}

// NewURLInfoError returns a failed URLInfo carrying the message of err.
func NewURLInfoError(err error) *URLInfo {
	return &URLInfo{Error: ErrorMessage(err)}
}

// MarshalJSON encodes the info as either the metadata object or {error}.
func (i URLInfo) MarshalJSON() ([]byte, error) {
	if i.Error != "" {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{i.Error})
	}
	return json.Marshal(struct {
		URL            string  `json:"url"`
		StatusCode     int     `json:"status_code"`
		ContentType    string  `json:"content_type"`
		ContentLength  string  `json:"content_length"`
		Server         string  `json:"server"`
		LastModified   string  `json:"last_modified"`
		ContentPreview *string `json:"content_preview,omitempty"`
		Title          string  `json:"title,omitempty"`
		Description    string  `json:"description,omitempty"`
		SiteName       string  `json:"site_name,omitempty"`
	}{
		URL:            i.URL,
		StatusCode:     i.StatusCode,
		ContentType:    i.ContentType,
		ContentLength:  i.ContentLength,
		Server:         i.Server,
		LastModified:   i.LastModified,
		ContentPreview: i.ContentPreview,
		Title:          i.Title,
		Description:    i.Description,
		SiteName:       i.SiteName,
	})
}

// Inspector reports metadata about a single URL.
type Inspector interface {
	// Inspect issues a metadata-only request to the URL, following
	// redirects. HTML pages additionally get a short content preview.
	// Returns ENETWORK if the URL cannot be reached.
	Inspect(ctx context.Context, url string) (*URLInfo, error)
}
