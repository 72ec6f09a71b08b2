package handlers

import (
	"errors"
	"strconv"

	"github.com/Ricardolsanchez/training-calendar-sub000/internal/dashboard"
	"github.com/Ricardolsanchez/training-calendar-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// ====== Действия над заявками ======

// UpdateBookingStatus переводит заявку в accepted/denied.
// Требует явного подтверждения; отказ — no-op без похода на бэкенд.
func UpdateBookingStatus(c *fiber.Ctx) error {
	t := tr(c)
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return jsonError(c, fiber.StatusBadRequest, t["action.invalid_id"], err)
	}

	type formT struct {
		Status      string `form:"status"`       // accepted | denied
		CalendarURL string `form:"calendar_url"` // опц., только при accept
	}
	var f formT
	if err := c.BodyParser(&f); err != nil {
		return jsonError(c, fiber.StatusBadRequest, t["action.invalid_form"], err)
	}

	state := sessionState(c)
	ctx, cancel := withAPITimeout()
	defer cancel()

	changed, err := state.ApplyStatus(ctx, id, f.Status, f.CalendarURL, confirmedParam(c))
	if errors.Is(err, dashboard.ErrBadStatus) {
		return jsonError(c, fiber.StatusBadRequest, t["booking.invalid_state"], err)
	}
	if err != nil {
		log.Printf("❌ статус заявки %d: %v", id, err)
		return backendError(c, t, "booking.status_failed", err)
	}
	if !changed {
		return jsonOK(c, fiber.Map{"message": t["action.cancelled"], "cancelled": true})
	}

	msg := t["booking.denied"]
	if f.Status == models.StatusAccepted {
		msg = t["booking.accepted"]
	}
	return jsonOK(c, fiber.Map{"message": msg, "id": id})
}

// ToggleAttendance переключает трёхзначный флаг посещаемости.
func ToggleAttendance(c *fiber.Ctx) error {
	t := tr(c)
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return jsonError(c, fiber.StatusBadRequest, t["action.invalid_id"], err)
	}

	state := sessionState(c)
	ctx, cancel := withAPITimeout()
	defer cancel()

	if err := state.ToggleAttendance(ctx, id); err != nil {
		if errors.Is(err, dashboard.ErrNotFound) {
			return jsonError(c, fiber.StatusNotFound, t["action.invalid_id"], err)
		}
		log.Printf("❌ посещаемость заявки %d: %v", id, err)
		return backendError(c, t, "attendance.failed", err)
	}
	return jsonOK(c, fiber.Map{"message": t["attendance.saved"], "id": id})
}

// DeleteBooking удаляет заявку (с подтверждением).
func DeleteBooking(c *fiber.Ctx) error {
	t := tr(c)
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return jsonError(c, fiber.StatusBadRequest, t["action.invalid_id"], err)
	}

	state := sessionState(c)
	ctx, cancel := withAPITimeout()
	defer cancel()

	deleted, err := state.DeleteBooking(ctx, id, confirmedParam(c))
	if err != nil {
		log.Printf("❌ удаление заявки %d: %v", id, err)
		return backendError(c, t, "booking.status_failed", err)
	}
	if !deleted {
		return jsonOK(c, fiber.Map{"message": t["action.cancelled"], "cancelled": true})
	}
	return jsonOK(c, fiber.Map{"message": t["booking.deleted"], "id": id})
}
