package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// ====== Статистика ======

// GetStats перезапрашивает KPI и отдаёт свежий снимок.
func GetStats(c *fiber.Ctx) error {
	t := tr(c)
	state := sessionState(c)

	ctx, cancel := withAPITimeout()
	defer cancel()
	if err := state.RefreshStats(ctx); err != nil {
		log.Printf("❌ статистика: %v", err)
		return backendError(c, t, "stats.load_failed", err)
	}

	kpis, perClass := state.KPIs()
	return jsonOK(c, fiber.Map{"kpis": kpis, "per_class": perClass})
}

// ExportStats скачивает табличный отчёт как файл с меткой времени в имени.
func ExportStats(c *fiber.Ctx) error {
	t := tr(c)
	state := sessionState(c)

	ctx, cancel := withAPITimeout()
	defer cancel()
	data, err := state.API().ExportStats(ctx)
	if err != nil {
		log.Printf("❌ экспорт статистики: %v", err)
		return backendError(c, t, "stats.export_failed", err)
	}

	filename := fmt.Sprintf("kpi-report-%s.csv", time.Now().Format("20060102-150405"))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Type("csv")
	return c.Send(data)
}
