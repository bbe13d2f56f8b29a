package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// MaxImageSize is the upload limit enforced before any network call.
const MaxImageSize = 5 * 1024 * 1024 // 5MB

type IUploader interface {
	UploadImage(ctx context.Context, filename, contentType string, data []byte) (url string, err error)
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

type uploadErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type client struct {
	baseURL      string
	cloudName    string
	uploadPreset string
	httpClient   *http.Client
	log          *logrus.Logger
}

func NewClient(baseURL, cloudName, uploadPreset string, timeout time.Duration, logger *logrus.Logger) IUploader {
	return &client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: logger,
	}
}

func (c *client) UploadImage(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if c.cloudName == "" || c.uploadPreset == "" {
		return "", fmt.Errorf("image host configuration is missing")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("please select a valid image file")
	}
	if len(data) > MaxImageSize {
		return "", fmt.Errorf("image file size must be less than 5MB")
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to prepare upload body: %w", err)
	}
	if _, err = part.Write(data); err != nil {
		return "", fmt.Errorf("failed to prepare upload body: %w", err)
	}
	if err = writer.WriteField("upload_preset", c.uploadPreset); err != nil {
		return "", fmt.Errorf("failed to prepare upload body: %w", err)
	}
	if err = writer.Close(); err != nil {
		return "", fmt.Errorf("failed to prepare upload body: %w", err)
	}

	url := fmt.Sprintf("%s/%s/image/upload", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c.log.Infof("ImageHost: Uploading %s (%d bytes)", filename, len(data))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorf("ImageHost: Upload request failed: %v", err)
		return "", fmt.Errorf("failed to communicate with image host: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp uploadErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Error.Message != "" {
			c.log.Errorf("ImageHost: Upload rejected with status %d: %s", resp.StatusCode, errResp.Error.Message)
			return "", fmt.Errorf("image upload failed: %s", errResp.Error.Message)
		}
		c.log.Errorf("ImageHost: Upload rejected with status %d", resp.StatusCode)
		return "", fmt.Errorf("image upload failed with status %d", resp.StatusCode)
	}

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode image host response: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("image host response is missing the image url")
	}

	c.log.Infof("ImageHost: Uploaded %s", result.PublicID)
	return result.SecureURL, nil
}
