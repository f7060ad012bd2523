// Package pushplus delivers attempt summaries to a phone through the
// pushplus.plus relay, the same channel the classroom platform's users
// already have in WeChat.
package pushplus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/cubesign/internal/ports"
	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "http://www.pushplus.plus"

const defaultTimeout = 15 * time.Second

type Gateway struct {
	http *resty.Client
}

var _ ports.PushGateway = (*Gateway)(nil)

// NewGateway targets baseURL, defaulting to the public pushplus endpoint.
func NewGateway(baseURL string) *Gateway {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Gateway{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(defaultTimeout),
	}
}

func (g *Gateway) SendPush(ctx context.Context, token, title, content string) error {
	if token == "" {
		return errors.New("push token is empty")
	}

	resp, err := g.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"token":   token,
			"title":   title,
			"content": content,
		}).
		Get("/send")
	if err != nil {
		return fmt.Errorf("send push: %w", err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("send push: status %d", resp.StatusCode())
	}

	return nil
}
