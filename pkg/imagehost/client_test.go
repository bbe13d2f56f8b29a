package imagehost

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestUploadImageLocalValidation(t *testing.T) {
	uploader := NewClient("http://unused", "demo", "unsigned", time.Second, newTestLogger())

	testCases := []struct {
		desc        string
		contentType string
		data        []byte
		errMsg      string
	}{
		{
			desc:        "failed_wrong_type",
			contentType: "application/pdf",
			data:        []byte("%PDF"),
			errMsg:      "valid image file",
		}, {
			desc:        "failed_oversized",
			contentType: "image/png",
			data:        bytes.Repeat([]byte{0x1}, MaxImageSize+1),
			errMsg:      "less than 5MB",
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			_, err := uploader.UploadImage(context.Background(), "file.bin", tC.contentType, tC.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tC.errMsg)
		})
	}
}

func TestUploadImageMissingConfig(t *testing.T) {
	uploader := NewClient("http://unused", "", "", time.Second, newTestLogger())

	_, err := uploader.UploadImage(context.Background(), "a.png", "image/png", []byte{0x1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration is missing")
}

func TestUploadImageSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/demo/image/upload", r.URL.Path)

		err := r.ParseMultipartForm(MaxImageSize)
		require.NoError(t, err)
		assert.Equal(t, "unsigned", r.FormValue("upload_preset"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "photo.png", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"secure_url":"https://cdn.example.com/photo.png","public_id":"photo"}`))
	}))
	defer server.Close()

	uploader := NewClient(server.URL, "demo", "unsigned", time.Second, newTestLogger())

	url, err := uploader.UploadImage(context.Background(), "photo.png", "image/png", []byte{0x89, 0x50})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/photo.png", url)
}

func TestUploadImageUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Upload preset not found"}}`))
	}))
	defer server.Close()

	uploader := NewClient(server.URL, "demo", "unsigned", time.Second, newTestLogger())

	_, err := uploader.UploadImage(context.Background(), "photo.png", "image/png", []byte{0x89})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Upload preset not found")
}

func TestUploadImageMissingURLInResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"public_id":"photo"}`))
	}))
	defer server.Close()

	uploader := NewClient(server.URL, "demo", "unsigned", time.Second, newTestLogger())

	_, err := uploader.UploadImage(context.Background(), "photo.png", "image/png", []byte{0x89})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing the image url")
}
