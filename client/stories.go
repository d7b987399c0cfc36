package client

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// Story is one item on the story feed.
type Story struct {
	ID       int       `json:"id"`
	Caption  string    `json:"caption"`
	MediaURL string    `json:"media_url"`
	PostedBy string    `json:"posted_by"`
	PostedAt time.Time `json:"posted_at"` // UTC
}

func (c *Client) Stories(ctx context.Context) ([]Story, error) {
	var stories []Story
	if err := c.get(ctx, "/stories", &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

// UploadStory posts story media as multipart form-data. Uploads carry
// their own bounded timeout so a stalled transfer cannot hang forever,
// and are never retried.
func (c *Client) UploadStory(ctx context.Context, caption, filename string, media io.Reader) (Story, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if err := w.WriteField("caption", caption); err != nil {
		return Story{}, errors.Wrap(err, "writing caption field")
	}
	part, err := w.CreateFormFile("media", filepath.Base(filename))
	if err != nil {
		return Story{}, errors.Wrap(err, "creating media part")
	}
	if _, err := io.Copy(part, media); err != nil {
		return Story{}, errors.Wrap(err, "copying media")
	}
	if err := w.Close(); err != nil {
		return Story{}, errors.Wrap(err, "finalizing form")
	}

	ctx, cancel := context.WithTimeout(ctx, c.uploadTimeout)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodPost, "/stories", &body, w.FormDataContentType())
	if err != nil {
		return Story{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Story{}, errors.Wrap(err, "uploading story")
	}

	var story Story
	if err := c.decode(resp, &story); err != nil {
		return Story{}, err
	}
	return story, nil
}
