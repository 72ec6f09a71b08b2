package handlers

import (
	"github.com/Ricardolsanchez/training-calendar-sub000/internal/dashboard"
	"github.com/Ricardolsanchez/training-calendar-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// ====== Панель администратора ======

func GetAdminPage(c *fiber.Ctx) error {
	t := tr(c)
	state := sessionState(c)

	if !state.Loaded() {
		ctx, cancel := withAPITimeout()
		defer cancel()
		if err := state.Load(ctx); err != nil {
			log.Printf("❌ загрузка панели: %v", err)
			return c.Render("admin", fiber.Map{
				"Title":        t["admin.title"],
				"Tr":           t,
				"Lang":         requestLang(c),
				"Message":      t["admin.load_failed"],
				"ActiveTab":    state.ActiveTab(),
				"ExtraScripts": templateScript("/static/js/admin.js"),
			})
		}
	}

	kpis, perClass := state.KPIs()
	return c.Render("admin", fiber.Map{
		"Title":        t["admin.title"],
		"Tr":           t,
		"Lang":         requestLang(c),
		"Groups":       state.Groups(),
		"Bookings":     state.Bookings(),
		"Classes":      state.Classes(),
		"Trainers":     models.Trainers,
		"KPIs":         kpis,
		"PerClass":     perClass,
		"ActiveTab":    state.ActiveTab(),
		"ExtraScripts": templateScript("/static/js/admin.js"),
	})
}

// PostTab переключает активную вкладку. Вкладка статистики
// при активации сразу тянет свежие KPI.
func PostTab(c *fiber.Ctx) error {
	t := tr(c)
	tab := c.FormValue("tab")
	switch tab {
	case dashboard.TabRequests, dashboard.TabClasses, dashboard.TabStats:
	default:
		return jsonError(c, fiber.StatusBadRequest, t["action.invalid_form"], nil)
	}

	state := sessionState(c)
	ctx, cancel := withAPITimeout()
	defer cancel()
	if err := state.SetActiveTab(ctx, tab); err != nil {
		return backendError(c, t, "stats.load_failed", err)
	}
	return jsonOK(c, fiber.Map{"tab": tab})
}
