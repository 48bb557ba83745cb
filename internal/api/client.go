package api

import (
	"context"
	"fmt"

	"resty.dev/v3"
)

// TokenSource supplies the bearer credential attached to outgoing requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Client is a thin gateway over the catalog REST backend. It never renders
// user-facing output; callers translate errors into notifications.
type Client struct {
	httpClient *resty.Client
	tokens     TokenSource
}

func NewClient(baseURL string, tokens TokenSource) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)

	return &Client{
		httpClient: client,
		tokens:     tokens,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

func (client *Client) request(ctx context.Context) *resty.Request {
	request := client.httpClient.R().SetContext(ctx)
	if token := client.tokens.Token(); token != "" {
		request.SetHeader("Authorization", "Bearer "+token)
	}
	return request
}

// Get fetches path and decodes the 2xx response body into out.
func (client *Client) Get(ctx context.Context, path string, out any) error {
	response, err := client.request(ctx).
		SetResult(out).
		Get(path)
	if err != nil {
		return fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return newError(response)
	}
	return nil
}

// Post sends body as JSON and decodes the 2xx response body into out.
// out may be nil when the caller does not care about the response.
func (client *Client) Post(ctx context.Context, path string, body, out any) error {
	request := client.request(ctx).SetBody(body)
	if out != nil {
		request.SetResult(out)
	}
	response, err := request.Post(path)
	if err != nil {
		return fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return newError(response)
	}
	return nil
}

// Put sends body as JSON and decodes the 2xx response body into out.
func (client *Client) Put(ctx context.Context, path string, body, out any) error {
	request := client.request(ctx).SetBody(body)
	if out != nil {
		request.SetResult(out)
	}
	response, err := request.Put(path)
	if err != nil {
		return fmt.Errorf("httpClient.Put > %w", err)
	}
	if response.IsError() {
		return newError(response)
	}
	return nil
}

// Delete issues an id-keyed delete. The response body is discarded.
func (client *Client) Delete(ctx context.Context, path string) error {
	response, err := client.request(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("httpClient.Delete > %w", err)
	}
	if response.IsError() {
		return newError(response)
	}
	return nil
}
