package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBearerToken: после WithToken каждый запрос несёт Authorization.
func TestBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second).WithToken("secreto-123")
	_, err := c.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer secreto-123", gotAuth)

	// без токена заголовка нет
	_, err = New(srv.URL, time.Second).ListBookings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

// TestRequestID: исходящие вызовы помечаются X-Request-ID.
func TestRequestID(t *testing.T) {
	var gotID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).ListClasses(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, gotID)
}

// TestBackendMessageSurfaced: сообщение бэкенда пробрасывается в APIError.
func TestBackendMessageSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"El campo title es obligatorio"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).ListBookings(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "El campo title es obligatorio", apiErr.Message)
}

// TestPrimeCSRF: кука из приёмного запроса возвращается заголовком
// X-XSRF-TOKEN на изменяющих вызовах.
func TestPrimeCSRF(t *testing.T) {
	var gotXSRF string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sanctum/csrf-cookie":
			http.SetCookie(w, &http.Cookie{Name: "XSRF-TOKEN", Value: "tok%3D42", Path: "/"})
			w.WriteHeader(http.StatusNoContent)
		case "/api/logout":
			gotXSRF = r.Header.Get("X-XSRF-TOKEN")
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	require.NoError(t, c.PrimeCSRF(context.Background()))
	require.NoError(t, c.Logout(context.Background()))

	// значение куки URL-декодируется перед отправкой
	assert.Equal(t, "tok=42", gotXSRF)
}

// TestGetHasNoXSRF: GET-запросы заголовок XSRF не несут.
func TestGetHasNoXSRF(t *testing.T) {
	var sawHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/sanctum/csrf-cookie" {
			http.SetCookie(w, &http.Cookie{Name: "XSRF-TOKEN", Value: "tok", Path: "/"})
			w.WriteHeader(http.StatusNoContent)
			return
		}
		sawHeader = r.Header.Get("X-XSRF-TOKEN") != ""
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	require.NoError(t, c.PrimeCSRF(context.Background()))
	_, err := c.ListBookings(context.Background())
	require.NoError(t, err)
	assert.False(t, sawHeader)
}
