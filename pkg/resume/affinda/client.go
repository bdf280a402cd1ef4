// Package affinda is a resume extractor backed by the Affinda document API.
package affinda

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/artem13815/hrboard/pkg/resume"
)

const defaultBaseURL = "https://api.affinda.com/v3"

// Client uploads documents synchronously (wait=true) and returns the parsed fields.
type Client struct {
	APIKey      string
	WorkspaceID string
	BaseURL     string
	httpDo      *http.Client
}

var _ resume.Extractor = (*Client)(nil)

func New(apiKey, workspaceID, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		APIKey:      apiKey,
		WorkspaceID: workspaceID,
		BaseURL:     strings.TrimRight(baseURL, "/"),
		httpDo:      &http.Client{Timeout: 2 * time.Minute},
	}
}

type documentResponse struct {
	Data  *resume.RawFields `json:"data"`
	Error *struct {
		ErrorCode   string `json:"errorCode"`
		ErrorDetail string `json:"errorDetail"`
	} `json:"error"`
}

func (c *Client) Extract(ctx context.Context, filename string, data []byte) (resume.RawFields, error) {
	if !resume.Supported(filename) {
		return resume.RawFields{}, fmt.Errorf("%w: %w", resume.ErrExtraction, resume.ErrUnsupportedFile)
	}
	if c.APIKey == "" || c.WorkspaceID == "" {
		return resume.RawFields{}, fmt.Errorf("%w: affinda credentials are not set", resume.ErrExtraction)
	}

	body, contentType, err := multipartBody(c.WorkspaceID, filename, data)
	if err != nil {
		return resume.RawFields{}, fmt.Errorf("%w: %v", resume.ErrExtraction, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/documents", body)
	if err != nil {
		return resume.RawFields{}, fmt.Errorf("%w: %v", resume.ErrExtraction, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpDo.Do(req)
	if err != nil {
		return resume.RawFields{}, fmt.Errorf("%w: %v", resume.ErrExtraction, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return resume.RawFields{}, fmt.Errorf("%w: affinda http %d: %s", resume.ErrExtraction, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out documentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return resume.RawFields{}, fmt.Errorf("%w: decode affinda response: %v", resume.ErrExtraction, err)
	}
	if out.Error != nil && (out.Error.ErrorCode != "" || out.Error.ErrorDetail != "") {
		return resume.RawFields{}, fmt.Errorf("%w: affinda %s: %s", resume.ErrExtraction, out.Error.ErrorCode, out.Error.ErrorDetail)
	}
	if out.Data == nil {
		return resume.RawFields{}, fmt.Errorf("%w: affinda returned no data", resume.ErrExtraction)
	}
	return *out.Data, nil
}

func multipartBody(workspace, filename string, data []byte) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := map[string]string{
		"workspace": workspace,
		"fileName":  filename,
		"wait":      "true",
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
