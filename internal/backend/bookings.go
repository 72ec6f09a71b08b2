package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Ricardolsanchez/training-calendar-sub000/internal/models"
)

// ListBookings возвращает все заявки.
func (c *Client) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateBooking отправляет заявку посетителя из публичного календаря.
func (c *Client) CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	var out models.Booking
	if err := c.do(ctx, http.MethodPost, "/api/bookings", b, &out); err != nil {
		return models.Booking{}, err
	}
	return out, nil
}

// UpdateBookingStatus переводит заявку в accepted/denied.
// calendarURL — необязательная ссылка на встречу (только при accept).
func (c *Client) UpdateBookingStatus(ctx context.Context, id int, status string, calendarURL *string) (models.Booking, error) {
	body := struct {
		Status      string  `json:"status"`
		CalendarURL *string `json:"calendar_url,omitempty"`
	}{Status: status, CalendarURL: calendarURL}

	var out models.Booking
	path := fmt.Sprintf("/api/bookings/%d/status", id)
	if err := c.do(ctx, http.MethodPut, path, body, &out); err != nil {
		return models.Booking{}, err
	}
	return out, nil
}

// UpdateAttendance выставляет флаг посещаемости.
func (c *Client) UpdateAttendance(ctx context.Context, id int, attended bool) (models.Booking, error) {
	body := struct {
		Attended bool `json:"attendedbutton"`
	}{Attended: attended}

	var out models.Booking
	path := fmt.Sprintf("/api/bookings/%d/attendance", id)
	if err := c.do(ctx, http.MethodPut, path, body, &out); err != nil {
		return models.Booking{}, err
	}
	return out, nil
}

// DeleteBooking удаляет заявку.
func (c *Client) DeleteBooking(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/bookings/%d", id), nil, nil)
}
