package handlers

import (
	"errors"
	"fmt"
	"html/template"

	"github.com/Ricardolsanchez/training-calendar-sub000/internal/backend"
	"github.com/Ricardolsanchez/training-calendar-sub000/internal/dashboard"
	"github.com/Ricardolsanchez/training-calendar-sub000/internal/i18n"

	"github.com/gofiber/fiber/v2"
)

const (
	sessionCookie = "admin_session"
	// LangCookie хранит выбор языка; не шифруется (см. encryptcookie в main)
	LangCookie = "lang"
)

var (
	store       *dashboard.Store
	defaultLang string
)

// Init передаёт хендлерам хранилище сессий и язык по умолчанию.
func Init(st *dashboard.Store, lang string) {
	store = st
	defaultLang = lang
	if defaultLang == "" {
		defaultLang = i18n.DefaultLang
	}
}

func templateScript(src string) template.HTML { // маленький помощник для layout'а
	return template.HTML(fmt.Sprintf(`<script src="%s"></script>`, src))
}

// requestLang: ?lang= → кука → язык по умолчанию. Выбор запоминается в куке.
func requestLang(c *fiber.Ctx) string {
	if lang := c.Query("lang"); lang == i18n.LangES || lang == i18n.LangEN {
		c.Cookie(&fiber.Cookie{Name: LangCookie, Value: lang, Path: "/"})
		return lang
	}
	if lang := c.Cookies(LangCookie); lang == i18n.LangES || lang == i18n.LangEN {
		return lang
	}
	return defaultLang
}

func tr(c *fiber.Ctx) i18n.Translations {
	return i18n.T(requestLang(c))
}

// confirmedParam: подтверждение действия приходит явным флагом формы/запроса.
// Его отсутствие — отказ пользователя, не ошибка.
func confirmedParam(c *fiber.Ctx) bool {
	v := c.FormValue("confirmed", c.Query("confirmed"))
	return v == "1" || v == "true"
}

// backendError отдаёт сообщение бэкенда, если оно есть, иначе — общий текст
// для данного действия. Отказы валидации бэкенда (4xx) пробрасываются со своим
// статусом; всё остальное — ошибка шлюза.
func backendError(c *fiber.Ctx, t i18n.Translations, fallbackKey string, err error) error {
	status := fiber.StatusBadGateway
	msg := t[fallbackKey]

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status >= 400 && apiErr.Status < 500 {
			status = apiErr.Status
		}
		if apiErr.Message != "" {
			msg = apiErr.Message
		}
	}
	return jsonError(c, status, msg, err)
}

// sessionState достаёт состояние панели, положенное middleware'ом.
func sessionState(c *fiber.Ctx) *dashboard.State {
	state, _ := c.Locals("state").(*dashboard.State)
	return state
}
