package api

import (
	"context"
	"fmt"
)

type credentials struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Login exchanges a phone/password pair for a bearer token.
func (client *Client) Login(ctx context.Context, phone, password string) (string, error) {
	return client.authenticate(ctx, "/auth/login", phone, password)
}

// Register creates an account and returns its bearer token.
func (client *Client) Register(ctx context.Context, phone, password string) (string, error) {
	return client.authenticate(ctx, "/auth/register", phone, password)
}

func (client *Client) authenticate(ctx context.Context, path, phone, password string) (string, error) {
	var result tokenResponse
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(credentials{Phone: phone, Password: password}).
		SetResult(&result).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", newError(response)
	}
	if result.Token == "" {
		return "", fmt.Errorf("empty token in response: %s", response.String())
	}
	return result.Token, nil
}
