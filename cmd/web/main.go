package main

import (
	"time"

	"github.com/Ricardolsanchez/training-calendar-sub000/internal/backend"
	"github.com/Ricardolsanchez/training-calendar-sub000/internal/config"
	"github.com/Ricardolsanchez/training-calendar-sub000/internal/dashboard"
	"github.com/Ricardolsanchez/training-calendar-sub000/internal/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Загрузка конфигурации
	cfg := config.LoadConfig()

	// Инициализация клиента бэкенда
	_ = backend.Get()

	// Инициализация шаблонов
	engine := html.New(cfg.Server.TemplatePath, ".html")

	// Создание приложения Fiber
	app := fiber.New(fiber.Config{
		Views:       engine,
		AppName:     "TrainingCalendar",
		ViewsLayout: "layouts/base",
	})

	// -------------------------------
	// Middleware: безопасность и логика
	// -------------------------------

	app.Use(recover.New())  // Перехватывает паники, возвращает 500 вместо краша
	app.Use(helmet.New())   // Добавляет HTTP security-заголовки
	app.Use(compress.New()) // Сжимает ответы gzip/br
	app.Use(logger.New())   // Логи запросов
	app.Use(limiter.New(limiter.Config{
		Max:        120,         // 120 запросов
		Expiration: time.Minute, // за минуту
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).SendString("Demasiadas solicitudes. Inténtalo más tarde.")
		},
	}))
	app.Use(etag.New()) // Ускоряет GET-запросы через кэширование по ETag
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key:    cfg.Session.Secret,            // ключ из config.secret.yaml
		Except: []string{handlers.LangCookie}, // выбор языка остаётся читаемым
	})) // Шифрует сессионную куку: наружу уходит шифртекст, не id сессии

	// -------------------------------
	// Статика и маршруты
	// -------------------------------
	app.Static("/static", cfg.Server.StaticPath)

	handlers.Init(dashboard.NewStore(), cfg.App.DefaultLang)
	setupRoutes(app)

	log.Printf("🚀 Сервер запущен на http://localhost%s", cfg.Server.Port)
	log.Printf("📅 Календарь: http://localhost%s/", cfg.Server.Port)
	log.Printf("🔑 Панель: http://localhost%s/admin", cfg.Server.Port)

	log.Fatal(app.Listen(cfg.Server.Port))
}

// setupRoutes — маршруты приложения
func setupRoutes(app *fiber.App) {
	// публичный календарь
	app.Get("/", handlers.GetCalendarPage)
	app.Post("/bookings", handlers.PostBooking)

	// вход администратора
	app.Get("/login", handlers.GetLoginPage)
	app.Post("/login", handlers.PostLogin)

	// панель администратора
	admin := app.Group("/admin", handlers.RequireAdmin)
	admin.Get("/", handlers.GetAdminPage)
	admin.Post("/tab", handlers.PostTab)
	admin.Post("/logout", handlers.PostLogout)

	// заявки
	admin.Put("/bookings/:id/status", handlers.UpdateBookingStatus)
	admin.Put("/bookings/:id/attendance", handlers.ToggleAttendance)
	admin.Delete("/bookings/:id", handlers.DeleteBooking)

	// занятия
	admin.Post("/classes", handlers.CreateClass)
	admin.Put("/classes/:id", handlers.UpdateClass)
	admin.Delete("/classes/:id", handlers.DeleteClass)

	// статистика
	admin.Get("/stats", handlers.GetStats)
	admin.Get("/stats/export", handlers.ExportStats)
}
