package blog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kbukum/blogkit/httpclient/envelope"
	"github.com/kbukum/blogkit/httpclient/rest"
	"github.com/kbukum/blogkit/logger"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates and stores the returned token, so later requests
// carry it as a bearer credential.
func (c *Client) Login(ctx context.Context, username, password string) (*envelope.Envelope[LoginResult], error) {
	env, err := rest.Post[LoginResult](ctx, c.api, "/user/login", credentials{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	if err := c.tokens.Save(env.Data.Token); err != nil {
		return nil, fmt.Errorf("blog: store token: %w", err)
	}
	c.log.Info("logged in", logger.Fields("username", username))
	return env, nil
}

// Logout forgets the stored token. The backend keeps no session, so no
// request is made.
func (c *Client) Logout() error {
	if err := c.tokens.Clear(); err != nil {
		return fmt.Errorf("blog: clear token: %w", err)
	}
	c.log.Info("logged out")
	return nil
}

// AuthorInfo returns the site author's profile.
func (c *Client) AuthorInfo(ctx context.Context) (*envelope.Envelope[User], error) {
	return rest.Get[User](ctx, c.api, "/user/author", nil)
}

// CheckToken asks the backend whether token is still valid.
func (c *Client) CheckToken(ctx context.Context, token string) (*envelope.Envelope[json.RawMessage], error) {
	return rest.Get[json.RawMessage](ctx, c.api, "/user/check", map[string]any{"token": token})
}

func (c *Client) ListUsers(ctx context.Context, filter ListFilter) (*envelope.Envelope[[]User], error) {
	return rest.Post[[]User](ctx, c.api, "/user/list", filter)
}

func (c *Client) GetUser(ctx context.Context, id int) (*envelope.Envelope[User], error) {
	return rest.Get[User](ctx, c.api, fmt.Sprintf("/user/%d", id), nil)
}

func (c *Client) CreateUser(ctx context.Context, user User) (*envelope.Envelope[string], error) {
	return rest.Post[string](ctx, c.api, "/user", user)
}

func (c *Client) UpdateUser(ctx context.Context, user User) (*envelope.Envelope[string], error) {
	return rest.Patch[string](ctx, c.api, "/user", user)
}

func (c *Client) UpdatePassword(ctx context.Context, change PasswordChange) (*envelope.Envelope[string], error) {
	return rest.Patch[string](ctx, c.api, "/user/pass", change)
}

func (c *Client) DeleteUser(ctx context.Context, id int) (*envelope.Envelope[string], error) {
	return rest.Delete[string](ctx, c.api, fmt.Sprintf("/user/%d", id), nil)
}
