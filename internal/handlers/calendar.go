package handlers

import (
	"strings"

	"github.com/Ricardolsanchez/training-calendar-sub000/internal/backend"
	"github.com/Ricardolsanchez/training-calendar-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// ====== Публичный календарь ======

func GetCalendarPage(c *fiber.Ctx) error {
	t := tr(c)
	api := backend.Get()

	ctx, cancel := withAPITimeout()
	defer cancel()
	classes, err := api.ListClasses(ctx)
	if err != nil {
		log.Printf("❌ список занятий: %v", err)
		return c.Render("calendar", fiber.Map{
			"Title":        t["calendar.title"],
			"Tr":           t,
			"Lang":         requestLang(c),
			"Classes":      []models.AvailableClass{},
			"Message":      t["admin.load_failed"],
			"ExtraScripts": templateScript("/static/js/calendar.js"),
		})
	}

	return c.Render("calendar", fiber.Map{
		"Title":        t["calendar.title"],
		"Tr":           t,
		"Lang":         requestLang(c),
		"Classes":      classes,
		"ExtraScripts": templateScript("/static/js/calendar.js"),
	})
}

// PostBooking принимает заявку посетителя и отправляет её на бэкенд.
func PostBooking(c *fiber.Ctx) error {
	t := tr(c)
	type formT struct {
		Name      string `form:"name"`
		Email     string `form:"email"`
		Notes     string `form:"notes"`
		StartDate string `form:"start_date"` // YYYY-MM-DD
		EndDate   string `form:"end_date"`
	}
	var f formT
	if err := c.BodyParser(&f); err != nil {
		return jsonError(c, fiber.StatusBadRequest, t["booking.form.invalid"], err)
	}
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Email) == "" || f.StartDate == "" || f.EndDate == "" {
		return jsonError(c, fiber.StatusBadRequest, t["booking.form.invalid"], nil)
	}

	api := backend.Get()
	ctx, cancel := withAPITimeout()
	defer cancel()

	if err := api.PrimeCSRF(ctx); err != nil {
		log.Printf("❌ csrf-cookie: %v", err)
	}

	booking := models.Booking{
		Name:      strings.TrimSpace(f.Name),
		Email:     strings.TrimSpace(f.Email),
		Notes:     f.Notes,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
	}
	created, err := api.CreateBooking(ctx, booking)
	if err != nil {
		log.Printf("❌ заявка не отправлена: %v", err)
		return backendError(c, t, "booking.send_failed", err)
	}

	return jsonOK(c, fiber.Map{"message": t["booking.sent"], "id": created.ID})
}
