package formsclient

import (
	"context"
	"fmt"

	"google.golang.org/api/forms/v1"
	"google.golang.org/api/option"

	"github.com/jakechorley/carehome-rota/internal/config"
	"github.com/jakechorley/carehome-rota/pkg/utils"
)

// Client wraps the Google Forms API client
type Client struct {
	service *forms.Service
	ctx     context.Context
}

// NewClient creates a Forms client reusing the shared OAuth token
func NewClient(ctx context.Context, oauthCfg *config.OAuthClientConfig, env string) (*Client, error) {
	oauthConfig, err := utils.GetOAuthConfig(oauthCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get oauth config: %w", err)
	}

	token, err := utils.GetTokenWithFlow(ctx, oauthConfig, env)
	if err != nil {
		return nil, fmt.Errorf("failed to get oauth token: %w", err)
	}

	httpClient := oauthConfig.Client(ctx, token)
	service, err := forms.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create forms service: %w", err)
	}

	return &Client{service: service, ctx: ctx}, nil
}
