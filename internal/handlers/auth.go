package handlers

import (
	"github.com/Ricardolsanchez/training-calendar-sub000/internal/backend"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// ====== Вход администратора ======

func GetLoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Title": tr(c)["login.title"],
		"Tr":    tr(c),
		"Lang":  requestLang(c),
	})
}

// PostLogin обменивает учётные данные на токен у бэкенда.
// Не-админов бэкенд отклоняет сам — здесь только пробрасываем отказ.
func PostLogin(c *fiber.Ctx) error {
	t := tr(c)
	type formT struct {
		Email    string `form:"email"`
		Password string `form:"password"`
	}
	var f formT
	if err := c.BodyParser(&f); err != nil || f.Email == "" || f.Password == "" {
		return c.Status(fiber.StatusBadRequest).Render("login", fiber.Map{
			"Title": t["login.title"],
			"Tr":    t,
			"Lang":  requestLang(c),
			"Error": t["action.invalid_form"],
		})
	}

	api := backend.Get()
	ctx, cancel := withAPITimeout()
	defer cancel()

	// Кука XSRF нужна бэкенду до первого изменяющего вызова
	if err := api.PrimeCSRF(ctx); err != nil {
		log.Printf("❌ csrf-cookie: %v", err)
	}

	token, err := api.Login(ctx, f.Email, f.Password)
	if err != nil {
		log.Printf("❌ вход отклонён (%s): %v", f.Email, err)
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
			"Title": t["login.title"],
			"Tr":    t,
			"Lang":  requestLang(c),
			"Error": t["login.failed"],
		})
	}

	// Токен живёт в состоянии сессии, в куку уходит только её id
	sid, _ := store.Create(api.WithToken(token))
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    sid,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	log.Printf("🔑 Администратор вошёл: %s", f.Email)
	return c.Redirect("/admin", fiber.StatusSeeOther)
}

// PostLogout гасит токен на бэкенде и выбрасывает состояние сессии.
func PostLogout(c *fiber.Ctx) error {
	state := sessionState(c)
	sid, _ := c.Locals("sid").(string)

	ctx, cancel := withAPITimeout()
	defer cancel()
	if err := state.API().Logout(ctx); err != nil {
		log.Printf("❌ logout на бэкенде: %v", err)
	}

	store.Delete(sid)
	c.Cookie(&fiber.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1})
	return c.Redirect("/login", fiber.StatusSeeOther)
}
