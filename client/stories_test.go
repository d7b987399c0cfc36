package client

import (
	"context"
	"io/ioutil"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/shule/core/user"
	"github.com/trezcool/shule/storage/inmemstore"
)

func Test_client_UploadStory(t *testing.T) {
	store := inmemstore.New()
	writeSession(t, store, "abc123", user.RoleTeacher)

	var gotCaption, gotFilename, gotBody, gotAuth string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm() failed: %v", err)
		}
		gotCaption = r.FormValue("caption")

		file, hdr, err := r.FormFile("media")
		if err != nil {
			t.Fatalf("FormFile() failed: %v", err)
		}
		defer file.Close()
		gotFilename = hdr.Filename
		data, _ := ioutil.ReadAll(file)
		gotBody = string(data)

		respondJSON(w, http.StatusCreated, okEnvelope(map[string]interface{}{
			"id": 3, "caption": gotCaption, "media_url": "/media/stories/" + hdr.Filename,
			"posted_by": "Asha", "posted_at": time.Now().UTC().Format(time.RFC3339),
		}))
	}), store, nil)

	story, err := c.UploadStory(context.Background(), "Sports day", "/tmp/photos/day.jpg", strings.NewReader("JPEGDATA"))
	if err != nil {
		t.Fatalf("UploadStory() failed: %v", err)
	}
	assert.Equal(t, "Bearer abc123", gotAuth)
	assert.Equal(t, "Sports day", gotCaption)
	assert.Equal(t, "day.jpg", gotFilename) // base name only
	assert.Equal(t, "JPEGDATA", gotBody)
	assert.Equal(t, 3, story.ID)
	assert.Equal(t, "/media/stories/day.jpg", story.MediaURL)
}

func Test_client_UploadStory_timeout(t *testing.T) {
	store := inmemstore.New()
	writeSession(t, store, "abc123", user.RoleTeacher)

	block := make(chan struct{})
	defer close(block)
	srvHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block // stall until the client gives up
	})

	c, _ := newTestClient(t, srvHandler, store, nil)
	c.uploadTimeout = 20 * time.Millisecond

	start := time.Now()
	_, err := c.UploadStory(context.Background(), "", "x.jpg", strings.NewReader("x"))
	if err == nil {
		t.Fatal("UploadStory() expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("UploadStory() took %v, the upload timeout did not fire", elapsed)
	}
}
