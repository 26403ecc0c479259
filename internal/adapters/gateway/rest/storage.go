package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Upload stores body under bucket/path, refusing to overwrite an existing
// object, then resolves the public URL. A failure at either step aborts the
// whole operation; no partial URL is ever returned.
func (c *Client) Upload(ctx context.Context, bucket, path string, body io.Reader, size int64) (string, error) {
	if bucket == "" || path == "" {
		return "", &Error{Kind: KindValidation, Message: "bucket and path are required"}
	}

	err := c.doJSON(ctx, request{
		op:     "file upload",
		method: http.MethodPost,
		path:   fmt.Sprintf("/storage/v1/object/%s/%s", bucket, path),
		headers: map[string]string{
			"x-upsert":      "false",
			"Cache-Control": "max-age=3600",
			"Content-Type":  "application/octet-stream",
		},
		raw:     body,
		rawSize: size,
	}, nil)
	if err != nil {
		return "", err
	}

	return c.publicURL(ctx, bucket, path)
}

// publicURL confirms the object resolves publicly before handing the URL
// back.
func (c *Client) publicURL(ctx context.Context, bucket, path string) (string, error) {
	endpoint := fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.BaseURL, bucket, path)

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodHead, endpoint, nil)
	if err != nil {
		return "", &Error{Kind: KindNetwork, Message: fmt.Sprintf("create request: %v", err)}
	}
	req.Header.Set("apikey", c.AnonKey)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		gwErr := &Error{Kind: KindNetwork, Message: err.Error()}
		c.Logger.Error("public url resolution failed", "error", gwErr)
		return "", gwErr
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		gwErr := &Error{Kind: kindForStatus(resp.StatusCode), Message: fmt.Sprintf("status %d", resp.StatusCode)}
		c.Logger.Error("public url resolution failed", "error", gwErr)
		return "", gwErr
	}

	return endpoint, nil
}
