package dropbox_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"fbs-backend/internal/dropbox"
)

func TestClient_Upload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/files/upload", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))

		var arg struct {
			Path       string `json:"path"`
			Mode       string `json:"mode"`
			Autorename bool   `json:"autorename"`
		}
		err := json.Unmarshal([]byte(r.Header.Get("Dropbox-API-Arg")), &arg)
		assert.NoError(t, err)
		assert.Equal(t, "/f.zip", arg.Path)
		assert.Equal(t, "add", arg.Mode)
		assert.True(t, arg.Autorename)

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, []byte("artifact-bytes"), body)

		w.Write([]byte(`{"path_lower":"/f.zip"}`))
	}))
	defer server.Close()

	client := dropbox.NewClient(server.URL, server.URL, "test-token")
	pathLower, err := client.Upload("f.zip", []byte("artifact-bytes"))

	assert.NoError(t, err)
	assert.Equal(t, "/f.zip", pathLower)
}

func TestClient_CreateSharedLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/sharing/create_shared_link_with_settings", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var req struct {
			Path string `json:"path"`
		}
		err := json.NewDecoder(r.Body).Decode(&req)
		assert.NoError(t, err)
		assert.Equal(t, "/f.zip", req.Path)

		w.Write([]byte(`{"url":"https://www.dropbox.com/s/abc123/f.zip?dl=0"}`))
	}))
	defer server.Close()

	client := dropbox.NewClient(server.URL, server.URL, "test-token")
	url, err := client.CreateSharedLink("/f.zip")

	assert.NoError(t, err)
	assert.Equal(t, "https://www.dropbox.com/s/abc123/f.zip?dl=0", url)
}

func TestClient_Relay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/2/files/upload":
			w.Write([]byte(`{"path_lower":"/f.zip"}`))
		case "/2/sharing/create_shared_link_with_settings":
			w.Write([]byte(`{"url":"https://www.dropbox.com/s/abc123/f.zip?dl=0"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := dropbox.NewClient(server.URL, server.URL, "test-token")
	link, err := client.Relay([]byte("artifact-bytes"), "f.zip")

	assert.NoError(t, err)
	assert.Equal(t, "https://www.dropbox.com/s/abc123/f.zip?dl=1", link)
}

func TestClient_Relay_SharingFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/2/files/upload":
			w.Write([]byte(`{"path_lower":"/f.zip"}`))
		default:
			http.Error(w, "sharing quota exceeded", http.StatusConflict)
		}
	}))
	defer server.Close()

	client := dropbox.NewClient(server.URL, server.URL, "test-token")
	_, err := client.Relay([]byte("artifact-bytes"), "f.zip")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create shared link")
}

func TestDirectLink(t *testing.T) {
	assert.Equal(t,
		"https://www.dropbox.com/s/abc123/f.zip?dl=1",
		dropbox.DirectLink("https://www.dropbox.com/s/abc123/f.zip?dl=0"))

	// No marker, nothing changes.
	assert.Equal(t,
		"https://www.dropbox.com/s/abc123/f.zip",
		dropbox.DirectLink("https://www.dropbox.com/s/abc123/f.zip"))

	// Already direct.
	assert.Equal(t,
		"https://www.dropbox.com/s/abc123/f.zip?dl=1",
		dropbox.DirectLink("https://www.dropbox.com/s/abc123/f.zip?dl=1"))
}
