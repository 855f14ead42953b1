package recommender

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const contentType = "application/json"

// RequestError is a non-2xx reply carrying the backend's structured error
// message. The message is intended for the user as-is.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

type errorBody struct {
	Error string `json:"error"`
}

func (c *Client) postJSON(url string, payload any, target any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req = c.setHeaders(req)
	req.Header.Set("Content-Type", contentType)

	return c.do(req, target)
}

func (c *Client) postMultipart(url string, fields map[string]string, fileField, fileName string, contents io.Reader, target any) error {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	for key, val := range fields {
		if err := w.WriteField(key, val); err != nil {
			return err
		}
	}

	part, err := w.CreateFormFile(fileField, fileName)
	if err != nil {
		return err
	}

	if _, err = io.Copy(part, contents); err != nil {
		return err
	}
	w.Close()

	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, url, &b)
	if err != nil {
		return err
	}

	req = c.setHeaders(req)
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.do(req, target)
}

func (c *Client) getJSON(url string, target any) error {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	req = c.setHeaders(req)
	req.Header.Set("Content-Type", contentType)

	return c.do(req, target)
}

// do executes the request and decodes the response body into target. A
// non-2xx reply with a parseable {"error": ...} body becomes a RequestError;
// any other failure surfaces as a plain error for the caller to treat as a
// transport problem.
func (c *Client) do(req *http.Request, target any) error {
	c.logger.Debug("make request",
		zap.String("url", req.URL.String()),
		zap.String("request_id", req.Header.Get("X-Request-ID")),
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var body errorBody
		if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
			return &RequestError{Status: resp.StatusCode, Message: body.Error}
		}
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	if target == nil {
		return nil
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request) *http.Request {
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())

	return req
}
