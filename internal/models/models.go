package models

// Статусы заявки. Переход только pending -> accepted/denied,
// автоматического отката нет.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusDenied   = "denied"
)

// Форматы проведения занятия
const (
	ModalityOnline     = "Online"
	ModalityPresencial = "Presencial"
)

// Booking — заявка посетителя на занятие. Хранится на бэкенде,
// здесь только представление для отрисовки и локального патчинга.
// Даты — строки YYYY-MM-DD (лексикографическая сортировка = хронологическая).
type Booking struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Notes       string  `json:"notes"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	TrainerName string  `json:"trainer_name,omitempty"`
	Status      string  `json:"status"`
	CalendarURL *string `json:"calendar_url,omitempty"` // ссылка на встречу, ставится при accept
	Attended    *bool   `json:"attendedbutton"`         // трёхзначный флаг: true/false/не отмечено
	CreatedAt   string  `json:"created_at,omitempty"`

	// Снимок исходных дат для аудита правок админа
	OriginalStartDate string `json:"original_start_date,omitempty"`
	OriginalEndDate   string `json:"original_end_date,omitempty"`
	OriginalDays      int    `json:"original_days,omitempty"`
}

// AvailableClass — занятие в публичном календаре.
// trainer_id бэкенд не отдаёт, резолвится на клиенте по имени (см. trainers.go).
type AvailableClass struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	TrainerID   int    `json:"trainer_id,omitempty"`
	TrainerName string `json:"trainer_name,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Modality    string `json:"modality"` // Online | Presencial
	SpotsLeft   int    `json:"spots_left"`
	Description string `json:"description,omitempty"`
}

// BookingGroup — производная группа принятых заявок на одно занятие.
// Не хранится нигде: пересобирается заново при каждом изменении списка.
type BookingGroup struct {
	Key         string
	ClassTitle  string
	StartDate   string
	EndDate     string
	TrainerName string
	Bookings    []Booking
}

// KPI — сводные счётчики по заявкам и посещаемости.
type KPI struct {
	TotalClasses     int `json:"total_classes"`
	AcceptedBookings int `json:"accepted_bookings"`
	Attended         int `json:"attended"`
	NotAttended      int `json:"not_attended"`
	NotMarked        int `json:"not_marked"`
	TotalAttended    int `json:"total_attended"`
}

// PerClassKPI — разбивка KPI по занятию (приходит только в «обёрнутом» ответе).
type PerClassKPI struct {
	ClassTitle  string `json:"classTitle"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	TrainerName string `json:"trainer_name,omitempty"`
	Requests    int    `json:"requests"`
	Attended    int    `json:"attended"`
	NotAttended int    `json:"not_attended"`
	NotMarked   int    `json:"not_marked"`
}
