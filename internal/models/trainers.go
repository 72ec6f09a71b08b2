package models

import "strings"

// Trainer — тренер из статического справочника.
type Trainer struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Справочник тренеров зашит в клиент: бэкенд возвращает только имя,
// id нужен лишь для предвыбора в форме редактирования занятия.
var Trainers = []Trainer{
	{ID: 1, Name: "Ricardo Sánchez"},
	{ID: 2, Name: "Laura Gómez"},
	{ID: 3, Name: "Andrés Castillo"},
	{ID: 4, Name: "María Fernanda Ruiz"},
	{ID: 5, Name: "Jorge Martínez"},
}

// ResolveTrainerID возвращает id тренера по имени (без учёта регистра и пробелов).
// 0 — имя в справочнике не найдено.
func ResolveTrainerID(name string) int {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return 0
	}
	for _, t := range Trainers {
		if strings.ToLower(t.Name) == want {
			return t.ID
		}
	}
	return 0
}
