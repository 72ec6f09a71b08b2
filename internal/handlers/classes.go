package handlers

import (
	"strconv"
	"strings"

	"github.com/Ricardolsanchez/training-calendar-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// ====== CRUD занятий ======

type classForm struct {
	Title       string `form:"title"`
	TrainerName string `form:"trainer_name"`
	StartDate   string `form:"start_date"` // YYYY-MM-DD
	EndDate     string `form:"end_date"`
	StartTime   string `form:"start_time"` // HH:MM
	EndTime     string `form:"end_time"`
	Modality    string `form:"modality"` // Online | Presencial
	SpotsLeft   int    `form:"spots_left"`
	Description string `form:"description"`
}

func (f *classForm) validate() bool {
	if f.Title == "" || f.StartDate == "" || f.EndDate == "" || f.StartTime == "" || f.EndTime == "" {
		return false
	}
	if f.SpotsLeft < 0 {
		return false
	}
	switch f.Modality {
	case models.ModalityOnline, models.ModalityPresencial:
		return true
	}
	return false
}

func (f *classForm) toModel() models.AvailableClass {
	return models.AvailableClass{
		Title:       strings.TrimSpace(f.Title),
		TrainerName: strings.TrimSpace(f.TrainerName),
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
		StartTime:   f.StartTime,
		EndTime:     f.EndTime,
		Modality:    f.Modality,
		SpotsLeft:   f.SpotsLeft,
		Description: f.Description,
	}
}

func CreateClass(c *fiber.Ctx) error {
	t := tr(c)
	var f classForm
	if err := c.BodyParser(&f); err != nil {
		return jsonError(c, fiber.StatusBadRequest, t["action.invalid_form"], err)
	}
	if !f.validate() {
		return jsonError(c, fiber.StatusBadRequest, t["action.invalid_form"], nil)
	}

	state := sessionState(c)
	ctx, cancel := withAPITimeout()
	defer cancel()

	created, err := state.CreateClass(ctx, f.toModel())
	if err != nil {
		log.Printf("❌ создание занятия: %v", err)
		return backendError(c, t, "class.save_failed", err)
	}
	return jsonOK(c, fiber.Map{"message": t["class.created"], "id": created.ID, "class": created})
}

func UpdateClass(c *fiber.Ctx) error {
	t := tr(c)
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return jsonError(c, fiber.StatusBadRequest, t["action.invalid_id"], err)
	}

	var f classForm
	if err := c.BodyParser(&f); err != nil {
		return jsonError(c, fiber.StatusBadRequest, t["action.invalid_form"], err)
	}
	if !f.validate() {
		return jsonError(c, fiber.StatusBadRequest, t["action.invalid_form"], nil)
	}

	cl := f.toModel()
	cl.ID = id

	state := sessionState(c)
	ctx, cancel := withAPITimeout()
	defer cancel()

	if err := state.UpdateClass(ctx, cl); err != nil {
		log.Printf("❌ обновление занятия %d: %v", id, err)
		return backendError(c, t, "class.save_failed", err)
	}
	return jsonOK(c, fiber.Map{"message": t["class.updated"], "id": id})
}

// DeleteClass удаляет занятие (с подтверждением).
func DeleteClass(c *fiber.Ctx) error {
	t := tr(c)
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return jsonError(c, fiber.StatusBadRequest, t["action.invalid_id"], err)
	}

	state := sessionState(c)
	ctx, cancel := withAPITimeout()
	defer cancel()

	deleted, err := state.DeleteClass(ctx, id, confirmedParam(c))
	if err != nil {
		log.Printf("❌ удаление занятия %d: %v", id, err)
		return backendError(c, t, "class.delete_failed", err)
	}
	if !deleted {
		return jsonOK(c, fiber.Map{"message": t["action.cancelled"], "cancelled": true})
	}
	return jsonOK(c, fiber.Map{"message": t["class.deleted"], "id": id})
}
