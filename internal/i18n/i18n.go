package i18n

// Translations — тексты интерфейса для одного языка
type Translations map[string]string

// Поддерживаемые языки
const (
	LangES = "es"
	LangEN = "en"
)

// DefaultLang — язык по умолчанию
const DefaultLang = LangES

// T возвращает таблицу строк для языка
func T(lang string) Translations {
	if lang == LangEN {
		return translationsEN
	}
	return translationsES
}

var translationsES = Translations{
	// Навигация
	"nav.calendar": "Calendario",
	"nav.admin":    "Administración",
	"nav.login":    "Iniciar sesión",
	"nav.logout":   "Cerrar sesión",

	// Публичный календарь
	"calendar.title":       "Clases disponibles",
	"calendar.spots_left":  "Cupos disponibles",
	"calendar.no_classes":  "No hay clases programadas por ahora.",
	"calendar.book":        "Reservar",
	"calendar.modality":    "Modalidad",
	"calendar.trainer":     "Entrenador",
	"booking.form.name":    "Nombre completo",
	"booking.form.email":   "Correo electrónico",
	"booking.form.notes":   "Notas",
	"booking.form.submit":  "Enviar solicitud",
	"booking.sent":         "Solicitud enviada. Te contactaremos pronto.",
	"booking.send_failed":  "No se pudo enviar la solicitud. Inténtalo de nuevo.",
	"booking.form.invalid": "Revisa los campos del formulario.",

	// Вход администратора
	"login.title":    "Acceso de administrador",
	"login.email":    "Correo electrónico",
	"login.password": "Contraseña",
	"login.submit":   "Entrar",
	"login.failed":   "Credenciales inválidas o cuenta sin permisos.",

	// Панель администратора
	"admin.title":           "Panel de administración",
	"admin.tab.requests":    "Solicitudes",
	"admin.tab.classes":     "Clases",
	"admin.tab.stats":       "Estadísticas",
	"admin.group.members":   "Participantes",
	"admin.unauthorized":    "Sesión expirada. Vuelve a iniciar sesión.",
	"admin.load_failed":     "No se pudieron cargar los datos.",
	"booking.accepted":      "Solicitud aceptada",
	"booking.denied":        "Solicitud rechazada",
	"booking.deleted":       "Solicitud eliminada",
	"booking.status_failed": "No se pudo actualizar la solicitud.",
	"booking.invalid_state": "Estado no válido.",
	"attendance.failed":     "No se pudo registrar la asistencia.",
	"attendance.saved":      "Asistencia registrada",
	"class.created":         "Clase creada",
	"class.updated":         "Clase actualizada",
	"class.deleted":         "Clase eliminada",
	"class.save_failed":     "No se pudo guardar la clase.",
	"class.delete_failed":   "No se pudo eliminar la clase.",
	"stats.load_failed":     "No se pudieron cargar las estadísticas.",
	"stats.export_failed":   "No se pudo descargar el informe.",
	"action.cancelled":      "Acción cancelada",
	"action.invalid_id":     "Identificador no válido.",
	"action.invalid_form":   "Datos del formulario no válidos.",
}

var translationsEN = Translations{
	// Navigation
	"nav.calendar": "Calendar",
	"nav.admin":    "Admin",
	"nav.login":    "Log in",
	"nav.logout":   "Log out",

	// Public calendar
	"calendar.title":       "Available classes",
	"calendar.spots_left":  "Spots left",
	"calendar.no_classes":  "No classes scheduled right now.",
	"calendar.book":        "Book",
	"calendar.modality":    "Modality",
	"calendar.trainer":     "Trainer",
	"booking.form.name":    "Full name",
	"booking.form.email":   "Email",
	"booking.form.notes":   "Notes",
	"booking.form.submit":  "Send request",
	"booking.sent":         "Request sent. We will contact you soon.",
	"booking.send_failed":  "Could not send the request. Please try again.",
	"booking.form.invalid": "Please check the form fields.",

	// Admin login
	"login.title":    "Admin access",
	"login.email":    "Email",
	"login.password": "Password",
	"login.submit":   "Log in",
	"login.failed":   "Invalid credentials or not an admin account.",

	// Admin dashboard
	"admin.title":           "Admin dashboard",
	"admin.tab.requests":    "Requests",
	"admin.tab.classes":     "Classes",
	"admin.tab.stats":       "Statistics",
	"admin.group.members":   "Participants",
	"admin.unauthorized":    "Session expired. Please log in again.",
	"admin.load_failed":     "Could not load data.",
	"booking.accepted":      "Request accepted",
	"booking.denied":        "Request denied",
	"booking.deleted":       "Request deleted",
	"booking.status_failed": "Could not update the request.",
	"booking.invalid_state": "Invalid status.",
	"attendance.failed":     "Could not save attendance.",
	"attendance.saved":      "Attendance saved",
	"class.created":         "Class created",
	"class.updated":         "Class updated",
	"class.deleted":         "Class deleted",
	"class.save_failed":     "Could not save the class.",
	"class.delete_failed":   "Could not delete the class.",
	"stats.load_failed":     "Could not load statistics.",
	"stats.export_failed":   "Could not download the report.",
	"action.cancelled":      "Action cancelled",
	"action.invalid_id":     "Invalid id.",
	"action.invalid_form":   "Invalid form data.",
}
