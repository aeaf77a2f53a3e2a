package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/davidcastanon/shopmart-backend/pkg/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

const ProviderGitHub = "github"

// Profile is the provider-agnostic identity returned by an OAuth exchange.
type Profile struct {
	AccountID string
	Email     string
	Name      string
	Image     string
	Provider  string
}

// Provider exchanges an authorization code for a user profile.
type Provider interface {
	Name() string
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*Profile, error)
}

// gitHubProvider talks to the GitHub OAuth app configured via environment.
type gitHubProvider struct {
	oauth   *oauth2.Config
	userURL string
}

// NewGitHubProvider wires the GitHub OAuth flow from environment config.
func NewGitHubProvider(cfg config.OAuthConfig) (Provider, error) {
	if cfg.GitHubClientID == "" || cfg.GitHubClientSecret == "" {
		return nil, fmt.Errorf("github oauth client id and secret are required")
	}
	return &gitHubProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.GitHubClientID,
			ClientSecret: cfg.GitHubClientSecret,
			RedirectURL:  cfg.GitHubRedirectURL,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     github.Endpoint,
		},
		userURL: "https://api.github.com/user",
	}, nil
}

func (p *gitHubProvider) Name() string {
	return ProviderGitHub
}

func (p *gitHubProvider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

type gitHubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

func (p *gitHubProvider) Exchange(ctx context.Context, code string) (*Profile, error) {
	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging github code: %w", err)
	}

	client := p.oauth.Client(ctx, token)
	client.Timeout = 10 * time.Second

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building github user request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching github user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github user endpoint returned %d", resp.StatusCode)
	}

	var user gitHubUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decoding github user: %w", err)
	}
	if user.ID == 0 {
		return nil, fmt.Errorf("github user response missing account id")
	}

	name := user.Name
	if name == "" {
		name = user.Login
	}

	return &Profile{
		AccountID: strconv.FormatInt(user.ID, 10),
		Email:     user.Email,
		Name:      name,
		Image:     user.AvatarURL,
		Provider:  ProviderGitHub,
	}, nil
}
