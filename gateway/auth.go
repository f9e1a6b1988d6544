package gateway

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/shopfront/admin-console/session"
)

// Login exchanges email and password for a bearer token.
//
//	POST /auth/login -> {"data": {"id": 1, "token": "..."}}
func (c *Client) Login(ctx context.Context, email, password string) (session.LoginResult, error) {
	body := session.Credentials{Email: email, Password: password}

	var data struct {
		ID    int64  `json:"id"`
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &data); err != nil {
		return session.LoginResult{}, errors.Wrap(err, "[Client.Login]")
	}

	return session.LoginResult{ID: data.ID, Token: data.Token}, nil
}
