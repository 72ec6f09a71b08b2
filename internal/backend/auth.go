package backend

import (
	"context"
	"net/http"
)

// Login обменивает учётные данные на bearer-токен.
// Не-админские аккаунты бэкенд отклоняет сам (403).
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/login", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// Logout гасит токен на бэкенде. Локальную очистку делает вызывающая сторона.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/logout", nil, nil)
}
