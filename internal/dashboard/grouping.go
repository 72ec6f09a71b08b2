package dashboard

import (
	"sort"

	"github.com/Ricardolsanchez/training-calendar-sub000/internal/models"
)

// GroupAccepted собирает принятые заявки в группы «одно занятие — одна группа».
// Ключ группы — имя заявки + дата начала: два разных занятия с одинаковым
// названием и датой сольются в одну группу (так устроен API бэкенда).
// Метаданные группы берутся из первой встреченной заявки и дальше не
// перезаписываются. Функция чистая: одинаковый вход — одинаковый выход,
// порядок заявок внутри группы сохраняется.
func GroupAccepted(bookings []models.Booking) []models.BookingGroup {
	byKey := make(map[string]*models.BookingGroup)
	var order []string

	for _, b := range bookings {
		if b.Status != models.StatusAccepted {
			continue
		}
		key := b.Name + "|" + b.StartDate
		g, ok := byKey[key]
		if !ok {
			g = &models.BookingGroup{
				Key:         key,
				ClassTitle:  b.Name,
				StartDate:   b.StartDate,
				EndDate:     b.EndDate,
				TrainerName: b.TrainerName,
			}
			byKey[key] = g
			order = append(order, key)
		}
		g.Bookings = append(g.Bookings, b)
	}

	out := make([]models.BookingGroup, 0, len(order))
	for _, key := range order {
		out = append(out, *byKey[key])
	}
	// Даты в формате YYYY-MM-DD сортируются лексикографически;
	// при равных датах сохраняется порядок появления.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDate < out[j].StartDate
	})
	return out
}
