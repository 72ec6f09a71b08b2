package dashboard

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/Ricardolsanchez/training-calendar-sub000/internal/backend"
	"github.com/Ricardolsanchez/training-calendar-sub000/internal/models"

	log "github.com/sirupsen/logrus"
)

// Вкладки панели
const (
	TabRequests = "requests"
	TabClasses  = "classes"
	TabStats    = "stats"
)

// Ресурсы с защитой от устаревших ответов
const (
	resBookings = "bookings"
	resClasses  = "classes"
	resStats    = "stats"
)

var (
	ErrNotFound  = errors.New("запись не найдена в локальном состоянии")
	ErrBadStatus = errors.New("недопустимый статус заявки")
)

// State — состояние панели одного администратора: локальный кэш заявок,
// занятий и KPI поверх бэкенда. Живёт в памяти до выхода из сессии.
//
// Политика обновлений: все операции пессимистичные (сначала сеть, потом
// локальный патч), единственное исключение — ToggleAttendance, см. там.
type State struct {
	mu  sync.Mutex
	api *backend.Client

	bookings  []models.Booking
	classes   []models.AvailableClass
	kpis      *models.KPI
	perClass  []models.PerClassKPI
	activeTab string
	loaded    bool

	// Номер последнего запроса по каждому ресурсу: ответ применяется,
	// только если за это время не ушёл более новый запрос.
	seq map[string]uint64
}

func NewState(api *backend.Client) *State {
	return &State{
		api:       api,
		activeTab: TabRequests,
		seq:       make(map[string]uint64),
	}
}

// API — клиент бэкенда, привязанный к токену этой сессии.
func (s *State) API() *backend.Client { return s.api }

// beginFetch выдаёт номер нового запроса по ресурсу.
func (s *State) beginFetch(resource string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[resource]++
	return s.seq[resource]
}

// stale — ответ с номером n устарел (уже ушёл более новый запрос).
// Вызывать под s.mu.
func (s *State) stale(resource string, n uint64) bool {
	return n != s.seq[resource]
}

// ====== Загрузка ======

// Load подтягивает заявки и занятия. Вызывается при открытии панели.
func (s *State) Load(ctx context.Context) error {
	nb := s.beginFetch(resBookings)
	bookings, err := s.api.ListBookings(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	if !s.stale(resBookings, nb) {
		s.bookings = bookings
	}
	s.mu.Unlock()

	nc := s.beginFetch(resClasses)
	classes, err := s.api.ListClasses(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	if !s.stale(resClasses, nc) {
		for i := range classes {
			if classes[i].TrainerID == 0 {
				classes[i].TrainerID = models.ResolveTrainerID(classes[i].TrainerName)
			}
		}
		s.classes = classes
	}
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Loaded — данные панели уже загружались.
func (s *State) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// ====== Снимки для отрисовки ======

func (s *State) Bookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *State) Classes() []models.AvailableClass {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.AvailableClass, len(s.classes))
	copy(out, s.classes)
	return out
}

// Groups пересобирает группы принятых заявок из текущего списка.
func (s *State) Groups() []models.BookingGroup {
	return GroupAccepted(s.Bookings())
}

// KPIs возвращает сводку и разбивку по занятиям (nil — сводки нет).
func (s *State) KPIs() (*models.KPI, []models.PerClassKPI) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kpis == nil {
		return nil, nil
	}
	k := *s.kpis
	pc := make([]models.PerClassKPI, len(s.perClass))
	copy(pc, s.perClass)
	return &k, pc
}

// ====== Вкладки ======

func (s *State) ActiveTab() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeTab
}

// SetActiveTab переключает вкладку. Статистика подтягивается лениво —
// только в момент активации её вкладки.
func (s *State) SetActiveTab(ctx context.Context, tab string) error {
	s.mu.Lock()
	s.activeTab = tab
	s.mu.Unlock()
	if tab == TabStats {
		return s.RefreshStats(ctx)
	}
	return nil
}

// refreshStatsIfActive перезапрашивает KPI после изменяющей операции,
// но только пока открыта вкладка статистики.
func (s *State) refreshStatsIfActive(ctx context.Context) {
	if s.ActiveTab() != TabStats {
		return
	}
	if err := s.RefreshStats(ctx); err != nil {
		log.Printf("❌ обновление KPI после изменения: %v", err)
	}
}

// ====== Заявки ======

// ApplyStatus переводит заявку в accepted/denied. Пессимистично: локальная
// запись заменяется ответом сервера только после успеха, остальные не трогаются.
// Без confirmed вызов — no-op (отказ от подтверждения не ошибка).
// Пустая ссылка на встречу нормализуется в «нет ссылки».
func (s *State) ApplyStatus(ctx context.Context, id int, status, calendarURL string, confirmed bool) (bool, error) {
	if !confirmed {
		return false, nil
	}
	if status != models.StatusAccepted && status != models.StatusDenied {
		return false, ErrBadStatus
	}

	var link *string
	if status == models.StatusAccepted {
		if v := strings.TrimSpace(calendarURL); v != "" {
			link = &v
		}
	}

	updated, err := s.api.UpdateBookingStatus(ctx, id, status, link)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	if i := s.findBooking(id); i >= 0 {
		s.bookings[i] = updated
	}
	s.mu.Unlock()

	s.refreshStatsIfActive(ctx)
	return true, nil
}

// ToggleAttendance — единственная оптимистичная операция: флаг
// переключается локально сразу, сеть — следом. При ошибке возвращается
// ровно прежнее значение (включая «не отмечено»), а не логическая инверсия.
func (s *State) ToggleAttendance(ctx context.Context, id int) error {
	s.mu.Lock()
	i := s.findBooking(id)
	if i < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	prev := s.bookings[i].Attended
	next := !(prev != nil && *prev)
	s.bookings[i].Attended = &next
	s.mu.Unlock()

	if _, err := s.api.UpdateAttendance(ctx, id, next); err != nil {
		s.mu.Lock()
		if j := s.findBooking(id); j >= 0 {
			s.bookings[j].Attended = prev
		}
		s.mu.Unlock()
		return err
	}

	s.refreshStatsIfActive(ctx)
	return nil
}

// DeleteBooking удаляет заявку (с подтверждением, пессимистично).
func (s *State) DeleteBooking(ctx context.Context, id int, confirmed bool) (bool, error) {
	if !confirmed {
		return false, nil
	}
	if err := s.api.DeleteBooking(ctx, id); err != nil {
		return false, err
	}
	s.mu.Lock()
	if i := s.findBooking(id); i >= 0 {
		s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
	}
	s.mu.Unlock()

	s.refreshStatsIfActive(ctx)
	return true, nil
}

// findBooking — индекс заявки по id. Вызывать под s.mu.
func (s *State) findBooking(id int) int {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return i
		}
	}
	return -1
}

// ====== Занятия ======

// CreateClass создаёт занятие и добавляет в локальный список ответ сервера,
// дополненный trainer_id из справочника (бэкенд отдаёт только имя).
func (s *State) CreateClass(ctx context.Context, cl models.AvailableClass) (models.AvailableClass, error) {
	created, err := s.api.CreateClass(ctx, cl)
	if err != nil {
		return models.AvailableClass{}, err
	}
	if created.TrainerName == "" {
		created.TrainerName = cl.TrainerName
	}
	if created.TrainerID == 0 {
		created.TrainerID = models.ResolveTrainerID(created.TrainerName)
	}

	s.mu.Lock()
	s.classes = append(s.classes, created)
	s.mu.Unlock()

	s.refreshStatsIfActive(ctx)
	return created, nil
}

// UpdateClass отправляет полную отредактированную запись; локально после
// успеха сливаются отредактированные поля (не эхо сервера).
func (s *State) UpdateClass(ctx context.Context, cl models.AvailableClass) error {
	if _, err := s.api.UpdateClass(ctx, cl); err != nil {
		return err
	}
	if cl.TrainerID == 0 {
		cl.TrainerID = models.ResolveTrainerID(cl.TrainerName)
	}

	s.mu.Lock()
	for i := range s.classes {
		if s.classes[i].ID == cl.ID {
			s.classes[i] = cl
			break
		}
	}
	s.mu.Unlock()

	s.refreshStatsIfActive(ctx)
	return nil
}

// DeleteClass удаляет занятие (с подтверждением, пессимистично).
func (s *State) DeleteClass(ctx context.Context, id int, confirmed bool) (bool, error) {
	if !confirmed {
		return false, nil
	}
	if err := s.api.DeleteClass(ctx, id); err != nil {
		return false, err
	}
	s.mu.Lock()
	for i := range s.classes {
		if s.classes[i].ID == id {
			s.classes = append(s.classes[:i], s.classes[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.refreshStatsIfActive(ctx)
	return true, nil
}

// ====== Статистика ======

// RefreshStats перезапрашивает KPI. Ответ применяется, только если за время
// запроса не ушёл более новый (защита от гонки устаревших ответов).
// При ошибке сводка сбрасывается: устаревший KPI не показываем.
func (s *State) RefreshStats(ctx context.Context) error {
	n := s.beginFetch(resStats)
	result, err := s.api.FetchStats(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stale(resStats, n) {
		return nil
	}
	if err != nil {
		s.kpis = nil
		s.perClass = nil
		return err
	}
	k := result.KPIs
	s.kpis = &k
	s.perClass = result.PerClass
	return nil
}
