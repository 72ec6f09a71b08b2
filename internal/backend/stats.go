package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Ricardolsanchez/training-calendar-sub000/internal/models"
)

// ErrBadStatsShape — ответ /api/stats не совпал ни с одной известной формой.
var ErrBadStatsShape = errors.New("неизвестная форма ответа статистики")

// StatsResult — разобранный ответ статистики.
// PerClass пуст, если бэкенд прислал «голый» KPI-объект.
type StatsResult struct {
	KPIs     models.KPI
	PerClass []models.PerClassKPI
}

// FetchStats запрашивает и разбирает сводку KPI.
func (c *Client) FetchStats(ctx context.Context) (StatsResult, error) {
	data, err := c.doRaw(ctx, http.MethodGet, "/api/stats", nil)
	if err != nil {
		return StatsResult{}, err
	}
	return ParseStats(data)
}

// ExportStats возвращает табличный отчёт как поток байт (CSV).
func (c *Client) ExportStats(ctx context.Context) ([]byte, error) {
	return c.doRaw(ctx, http.MethodGet, "/api/stats/export", nil)
}

// Обязательные числовые поля KPI-объекта
var kpiFields = []string{
	"total_classes",
	"accepted_bookings",
	"attended",
	"not_attended",
	"not_marked",
	"total_attended",
}

// ParseStats принимает одну из двух известных форм ответа:
//   - обёрнутую: {ok, kpis, per_class?}
//   - голый KPI-объект с шестью числовыми полями
//
// Различение структурное — по наличию и типам полей, без тега-дискриминатора.
// Всё остальное — ошибка.
func ParseStats(data []byte) (StatsResult, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return StatsResult{}, fmt.Errorf("%w: %v", ErrBadStatsShape, err)
	}

	// Обёрнутая форма: ключ kpis с валидным KPI-объектом внутри
	if rawKPI, ok := probe["kpis"]; ok {
		kpi, err := parseKPIObject(rawKPI)
		if err != nil {
			return StatsResult{}, err
		}
		result := StatsResult{KPIs: kpi}
		if rawPC, ok := probe["per_class"]; ok && string(rawPC) != "null" {
			if err := json.Unmarshal(rawPC, &result.PerClass); err != nil {
				return StatsResult{}, fmt.Errorf("%w: per_class: %v", ErrBadStatsShape, err)
			}
		}
		return result, nil
	}

	// Голая форма
	kpi, err := parseKPIObject(data)
	if err != nil {
		return StatsResult{}, err
	}
	return StatsResult{KPIs: kpi}, nil
}

// parseKPIObject проверяет наличие и числовой тип всех шести полей.
func parseKPIObject(raw []byte) (models.KPI, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.KPI{}, fmt.Errorf("%w: %v", ErrBadStatsShape, err)
	}
	for _, f := range kpiFields {
		rawField, ok := fields[f]
		if !ok {
			return models.KPI{}, fmt.Errorf("%w: нет поля %q", ErrBadStatsShape, f)
		}
		var num float64
		if err := json.Unmarshal(rawField, &num); err != nil {
			return models.KPI{}, fmt.Errorf("%w: поле %q не число", ErrBadStatsShape, f)
		}
	}
	var kpi models.KPI
	if err := json.Unmarshal(raw, &kpi); err != nil {
		return models.KPI{}, fmt.Errorf("%w: %v", ErrBadStatsShape, err)
	}
	return kpi, nil
}
