package cloudsigma

import (
	"context"
	"io"
	"net/http"
	"strings"
)

const uploadPath = "drives/upload/"

// Upload streams a raw drive image to the direct upload endpoint. The API
// creates a new drive from it and answers with the drive uuid.
func (c *Client) Upload(ctx context.Context, body io.Reader) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadEndpoint, body)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Type", "application/octet-stream")

	data, err := c.send(c.uploadClient, req, uploadPath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
