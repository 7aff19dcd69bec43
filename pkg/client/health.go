package client

import (
	"context"
	"net/http"
	"net/url"
)

// Health checks the liveness of the API
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/healthz", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Ready checks that the API can reach its database
func (c *Client) Ready(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/readyz", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Ping is a simple connectivity test
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Health(ctx)
	return err
}

// Hello calls the greeting endpoint
func (c *Client) Hello(ctx context.Context, name string) (string, error) {
	var msg MessageResponse
	if err := c.doRequest(ctx, http.MethodGet, "/hello/"+url.PathEscape(name), nil, &msg); err != nil {
		return "", err
	}
	return msg.Message, nil
}
