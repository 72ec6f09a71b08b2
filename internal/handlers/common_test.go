package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ricardolsanchez/training-calendar-sub000/internal/backend"
	"github.com/Ricardolsanchez/training-calendar-sub000/internal/dashboard"
	"github.com/Ricardolsanchez/training-calendar-sub000/internal/i18n"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBackendErrorStatusPassthrough: отказы валидации бэкенда (4xx) уходят
// со своим статусом, а не как ошибка шлюза; 5xx и сетевые сбои — 502.
func TestBackendErrorStatusPassthrough(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{
			name:       "backend 4xx passes through",
			err:        &backend.APIError{Status: fiber.StatusUnprocessableEntity, Message: "El campo title es obligatorio"},
			wantStatus: fiber.StatusUnprocessableEntity,
			wantTitle:  "El campo title es obligatorio",
		},
		{
			name:       "backend 4xx without message keeps fallback text",
			err:        &backend.APIError{Status: fiber.StatusNotFound},
			wantStatus: fiber.StatusNotFound,
			wantTitle:  i18n.T(i18n.LangES)["booking.send_failed"],
		},
		{
			name:       "backend 5xx reported as gateway fault",
			err:        &backend.APIError{Status: fiber.StatusInternalServerError, Message: "boom"},
			wantStatus: fiber.StatusBadGateway,
			wantTitle:  "boom",
		},
		{
			name:       "transport error reported as gateway fault",
			err:        errors.New("dial tcp: connection refused"),
			wantStatus: fiber.StatusBadGateway,
			wantTitle:  i18n.T(i18n.LangES)["booking.send_failed"],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/x", func(c *fiber.Ctx) error {
				return backendError(c, i18n.T(i18n.LangES), "booking.send_failed", tt.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var problem struct {
				Title string `json:"title"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&problem))
			assert.Equal(t, tt.wantTitle, problem.Title)
		})
	}
}

// TestSessionCookieEncrypted: наружу уходит шифртекст, а не id сессии;
// расшифрованная кука открывает панель, сырой id — нет.
func TestSessionCookieEncrypted(t *testing.T) {
	Init(dashboard.NewStore(), i18n.LangES)

	app := fiber.New()
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key:    encryptcookie.GenerateKey(),
		Except: []string{LangCookie},
	}))

	sid, _ := store.Create(backend.New("http://127.0.0.1:1", time.Second))
	app.Post("/session", func(c *fiber.Ctx) error {
		c.Cookie(&fiber.Cookie{Name: sessionCookie, Value: sid, Path: "/", HTTPOnly: true})
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/admin", RequireAdmin, func(c *fiber.Ctx) error {
		return c.SendString("panel")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/session", nil))
	require.NoError(t, err)

	var cookie *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == sessionCookie {
			cookie = ck
		}
	}
	require.NotNil(t, cookie)
	assert.NotEqual(t, sid, cookie.Value) // в куке шифртекст, не сырой id

	// зашифрованная кука проходит через middleware и открывает панель
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: cookie.Value})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// сырой id без шифрования сессию не открывает
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: sid})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}
