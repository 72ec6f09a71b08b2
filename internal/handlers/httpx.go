package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

var problemBaseURL string

// SetProblemBaseURL задаёт базовый URL для поля type Problem Details.
// Пример: https://training-calendar.dev/problem
func SetProblemBaseURL(base string) {
	problemBaseURL = strings.TrimRight(strings.TrimSpace(base), "/")
}

// jsonError — единый ответ об ошибке в формате RFC 7807 (application/problem+json)
// Для обратной совместимости добавляет поля success=false и error.
func jsonError(c *fiber.Ctx, status int, publicMsg string, err error) error {
	if err != nil {
		log.Printf("handler error: %v", err)
	}
	if publicMsg == "" {
		publicMsg = fiber.ErrInternalServerError.Message
	}
	pType := problemType(publicMsg, status)
	problem := fiber.Map{
		"type":     pType,
		"title":    publicMsg,
		"status":   status,
		"instance": c.OriginalURL(),
	}
	if err != nil {
		problem["detail"] = err.Error()
	}
	// backward-compat fields
	problem["success"] = false
	problem["error"] = publicMsg

	c.Type("application/problem+json")
	return c.Status(status).JSON(problem)
}

func jsonOK(c *fiber.Ctx, payload fiber.Map) error {
	if payload == nil {
		payload = fiber.Map{}
	}
	payload["success"] = true
	c.Type("application/json")
	return c.JSON(payload)
}

// problemType возвращает осмысленный URI для поля "type" Problem Details.
// Базовая схема использует URN, чтобы не зависеть от внешнего домена.
func problemType(title string, status int) string {
	t := strings.ToLower(strings.TrimSpace(title))
	code := ""
	// Частные случаи по тексту сообщения → код
	switch {
	case strings.Contains(t, "identificador no válido") || strings.Contains(t, "invalid id"):
		code = "invalid-id"
	case strings.Contains(t, "formulario") || strings.Contains(t, "form"):
		code = "invalid-form"
	case strings.Contains(t, "credenciales") || strings.Contains(t, "credentials"):
		code = "unauthorized"
	case strings.Contains(t, "sesión expirada") || strings.Contains(t, "session expired"):
		code = "session-expired"
	case strings.Contains(t, "estado no válido") || strings.Contains(t, "invalid status"):
		code = "invalid-status"
	case strings.Contains(t, "no se pudo") || strings.Contains(t, "could not"):
		code = "upstream-error"
	}
	if code == "" {
		// Общее соответствие по HTTP-статусу
		switch status {
		case fiber.StatusBadRequest:
			code = "validation-error"
		case fiber.StatusUnauthorized:
			code = "unauthorized"
		case fiber.StatusForbidden:
			code = "forbidden"
		case fiber.StatusNotFound:
			code = "not-found"
		case fiber.StatusConflict:
			code = "conflict"
		case fiber.StatusBadGateway:
			code = "bad-gateway"
		default:
			code = "internal-error"
		}
	}
	if problemBaseURL != "" && (strings.HasPrefix(problemBaseURL, "http://") || strings.HasPrefix(problemBaseURL, "https://")) {
		return problemBaseURL + "/" + code
	}
	return "urn:training-calendar:problem:" + code
}
