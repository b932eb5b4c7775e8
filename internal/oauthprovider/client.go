// Package oauthprovider клиент Google OAuth 2.0: обмен кода авторизации
// на токен и получение профиля пользователя.
package oauthprovider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/bikash/portfolio-backend/internal/config"
)

const userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// UserInfo профиль пользователя Google.
type UserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// Client обертка над конфигурацией oauth2 для Google.
type Client struct {
	oauthConfig *oauth2.Config
}

// NewClient создает клиент Google OAuth.
func NewClient(cfg config.GoogleOAuth) *Client {
	return &Client{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

// AuthCodeURL возвращает URL страницы согласия Google с параметром state.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange обменивает код авторизации на токен доступа.
func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	const op = "oauthprovider.Exchange"
	token, err := c.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// FetchUserInfo запрашивает профиль пользователя по токену доступа.
func (c *Client) FetchUserInfo(ctx context.Context, token *oauth2.Token) (*UserInfo, error) {
	const op = "oauthprovider.FetchUserInfo"

	httpClient := c.oauthConfig.Client(ctx, token)
	resp, err := httpClient.Get(userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %w", op, errors.New("unexpected status: "+resp.Status))
	}

	var info UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &info, nil
}
