package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Ricardolsanchez/training-calendar-sub000/internal/models"
)

// ListClasses возвращает занятия публичного календаря.
func (c *Client) ListClasses(ctx context.Context) ([]models.AvailableClass, error) {
	var out []models.AvailableClass
	if err := c.do(ctx, http.MethodGet, "/api/classes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateClass создаёт занятие. Полезная нагрузка без id; бэкенд вернёт запись с id,
// но trainer_id не эхоит — его резолвит вызывающая сторона.
func (c *Client) CreateClass(ctx context.Context, cl models.AvailableClass) (models.AvailableClass, error) {
	cl.ID = 0
	var out models.AvailableClass
	if err := c.do(ctx, http.MethodPost, "/api/classes", cl, &out); err != nil {
		return models.AvailableClass{}, err
	}
	return out, nil
}

// UpdateClass отправляет полную отредактированную запись.
func (c *Client) UpdateClass(ctx context.Context, cl models.AvailableClass) (models.AvailableClass, error) {
	var out models.AvailableClass
	path := fmt.Sprintf("/api/classes/%d", cl.ID)
	if err := c.do(ctx, http.MethodPut, path, cl, &out); err != nil {
		return models.AvailableClass{}, err
	}
	return out, nil
}

// DeleteClass удаляет занятие.
func (c *Client) DeleteClass(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/classes/%d", id), nil, nil)
}
