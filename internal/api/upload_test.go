package api

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadImageSendsMultipart(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/upload/image", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		file, header, err := r.FormFile("image")
		if assert.NoError(t, err) {
			defer file.Close()
			data, _ := io.ReadAll(file)
			assert.Equal(t, "png-bytes", string(data))
			assert.Equal(t, "phone.png", header.Filename)
		}
		w.Write(jsonResponse(map[string]any{"url": "https://cdn.example.com/phone.png"}))
	})

	url, err := client.UploadImage(context.Background(), "/tmp/phone.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/phone.png", url)
}

func TestUploadImageRejectsNonImages(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", Credentials{})
	_, err := client.UploadImage(context.Background(), "notes.txt", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported image type")
}

func TestUploadImageWithoutURLFails(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(jsonResponse(map[string]any{}))
	})

	_, err := client.UploadImage(context.Background(), "a.jpg", strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, "upload returned no url", UserMessage(err))
}

func TestUploadImageSurfacesBackendError(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		w.Write([]byte(`{"success":false,"message":"File too large"}`))
	})

	_, err := client.UploadImage(context.Background(), "a.webp", strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, "File too large", err.Error())
}
