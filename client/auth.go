package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/xpluscommerce/storefront-api/models"
	"github.com/xpluscommerce/storefront-api/store"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

// Login authenticates and caches the user snapshot in storage so the session
// survives restarts. The session cookie itself lives in the HTTP client's jar.
func (c *Client) Login(ctx context.Context, username, password string) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPost, "/api/login", nil, credentials{Username: username, Password: password}, &user)
	if err != nil {
		return models.User{}, err
	}
	c.saveUser(user)
	return user, nil
}

func (c *Client) Register(ctx context.Context, username, email, password string) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPost, "/api/register", nil, credentials{Username: username, Password: password, Email: email}, &user)
	if err != nil {
		return models.User{}, err
	}
	c.saveUser(user)
	return user, nil
}

// Logout ends the server session and drops the cached snapshot regardless of the
// server's answer.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/logout", nil, nil, nil)
	_ = c.storage.Delete(store.UserStorageKey)
	return err
}

// CurrentUser returns the cached signed-in user, if any.
func (c *Client) CurrentUser() (models.User, bool) {
	data, ok := c.storage.Get(store.UserStorageKey)
	if !ok {
		return models.User{}, false
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return models.User{}, false
	}
	return user, true
}

func (c *Client) saveUser(user models.User) {
	data, err := json.Marshal(user)
	if err != nil {
		return
	}
	_ = c.storage.Set(store.UserStorageKey, data)
}
