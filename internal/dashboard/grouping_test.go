package dashboard

import (
	"testing"

	"github.com/Ricardolsanchez/training-calendar-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking(id int, name, start, status string) models.Booking {
	return models.Booking{ID: id, Name: name, StartDate: start, EndDate: start, Status: status}
}

// TestGroupAccepted тестирует разбиение заявок на группы
func TestGroupAccepted(t *testing.T) {
	tests := []struct {
		name       string
		bookings   []models.Booking
		wantGroups int
		wantSizes  []int
	}{
		{
			name:       "empty list",
			bookings:   nil,
			wantGroups: 0,
		},
		{
			name: "only pending and denied are skipped",
			bookings: []models.Booking{
				booking(1, "Yoga", "2026-09-01", models.StatusPending),
				booking(2, "Yoga", "2026-09-01", models.StatusDenied),
			},
			wantGroups: 0,
		},
		{
			name: "same name and date merge into one group",
			bookings: []models.Booking{
				booking(1, "Yoga", "2026-09-01", models.StatusAccepted),
				booking(2, "Yoga", "2026-09-01", models.StatusAccepted),
				booking(3, "Pilates", "2026-09-02", models.StatusAccepted),
			},
			wantGroups: 2,
			wantSizes:  []int{2, 1},
		},
		{
			name: "same name, different date stay apart",
			bookings: []models.Booking{
				booking(1, "Yoga", "2026-09-01", models.StatusAccepted),
				booking(2, "Yoga", "2026-09-08", models.StatusAccepted),
			},
			wantGroups: 2,
			wantSizes:  []int{1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := GroupAccepted(tt.bookings)
			require.Len(t, groups, tt.wantGroups)
			for i, size := range tt.wantSizes {
				assert.Len(t, groups[i].Bookings, size)
			}
		})
	}
}

// TestGroupAcceptedPartition проверяет, что группы накрывают ровно принятые
// заявки: каждая входит в одну группу, ни одна не теряется и не дублируется.
func TestGroupAcceptedPartition(t *testing.T) {
	bookings := []models.Booking{
		booking(1, "Yoga", "2026-09-01", models.StatusAccepted),
		booking(2, "Pilates", "2026-09-02", models.StatusPending),
		booking(3, "Yoga", "2026-09-01", models.StatusAccepted),
		booking(4, "Crossfit", "2026-08-20", models.StatusAccepted),
		booking(5, "Box", "2026-09-05", models.StatusDenied),
	}

	groups := GroupAccepted(bookings)

	seen := map[int]int{}
	for _, g := range groups {
		for _, b := range g.Bookings {
			seen[b.ID]++
			assert.Equal(t, models.StatusAccepted, b.Status)
		}
	}
	assert.Equal(t, map[int]int{1: 1, 3: 1, 4: 1}, seen)
}

// TestGroupAcceptedOrder проверяет сортировку по дате начала
// и сохранение порядка появления при равных датах.
func TestGroupAcceptedOrder(t *testing.T) {
	bookings := []models.Booking{
		booking(1, "Pilates", "2026-09-02", models.StatusAccepted),
		booking(2, "Yoga", "2026-09-01", models.StatusAccepted),
		booking(3, "Box", "2026-09-01", models.StatusAccepted), // та же дата, появился позже
		booking(4, "Crossfit", "2026-08-20", models.StatusAccepted),
	}

	groups := GroupAccepted(bookings)
	require.Len(t, groups, 4)

	assert.Equal(t, "Crossfit", groups[0].ClassTitle)
	assert.Equal(t, "Yoga", groups[1].ClassTitle) // 2026-09-01, первым встретился Yoga
	assert.Equal(t, "Box", groups[2].ClassTitle)
	assert.Equal(t, "Pilates", groups[3].ClassTitle)
}

// TestGroupAcceptedMetadataFromFirst: метаданные группы — из первой
// встреченной заявки, расхождения в последующих не перетирают их.
func TestGroupAcceptedMetadataFromFirst(t *testing.T) {
	first := booking(1, "Yoga", "2026-09-01", models.StatusAccepted)
	first.TrainerName = "Laura Gómez"
	first.EndDate = "2026-09-03"

	second := booking(2, "Yoga", "2026-09-01", models.StatusAccepted)
	second.TrainerName = "Jorge Martínez" // правили отдельно, группа не меняется
	second.EndDate = "2026-09-05"

	groups := GroupAccepted([]models.Booking{first, second})
	require.Len(t, groups, 1)

	assert.Equal(t, "Laura Gómez", groups[0].TrainerName)
	assert.Equal(t, "2026-09-03", groups[0].EndDate)
	require.Len(t, groups[0].Bookings, 2)
	assert.Equal(t, 1, groups[0].Bookings[0].ID) // порядок вставки сохранён
	assert.Equal(t, 2, groups[0].Bookings[1].ID)
}

// TestGroupAcceptedIdempotent: повторный прогон по тому же списку
// даёт идентичный результат.
func TestGroupAcceptedIdempotent(t *testing.T) {
	bookings := []models.Booking{
		booking(1, "Yoga", "2026-09-01", models.StatusAccepted),
		booking(2, "Yoga", "2026-09-01", models.StatusAccepted),
		booking(3, "Pilates", "2026-08-15", models.StatusAccepted),
		booking(4, "Box", "2026-09-01", models.StatusAccepted),
	}

	assert.Equal(t, GroupAccepted(bookings), GroupAccepted(bookings))
}
