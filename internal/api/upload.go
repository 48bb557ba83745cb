package api

import (
	"context"
	"fmt"
	"io"
)

// UploadResult is the reference returned by the upload endpoint.
type UploadResult struct {
	URL string `json:"url"`
}

// Upload posts one file as multipart form data under the "file" field and
// returns the stored reference URL.
func (client *Client) Upload(ctx context.Context, fileName string, contents io.Reader) (UploadResult, error) {
	var result UploadResult
	response, err := client.request(ctx).
		SetFileReader("file", fileName, contents).
		SetResult(&result).
		Post("/upload")
	if err != nil {
		return UploadResult{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return UploadResult{}, newError(response)
	}
	if result.URL == "" {
		return UploadResult{}, fmt.Errorf("empty url in upload response: %s", response.String())
	}
	return result, nil
}
