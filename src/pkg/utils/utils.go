package utils

import (
	"encoding/json"
	"strconv"

	httpError "rental-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

// Result is the envelope every usecase returns to its controller.
type Result struct {
	Data  interface{}
	Error interface{}
}

type responseBody struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(responseBody{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ResponseError(err interface{}, ctx *fiber.Ctx) error {
	switch e := err.(type) {
	case httpError.CommonError:
		return ctx.Status(e.Code).JSON(responseBody{Success: false, Error: e.Message})
	case *httpError.CommonError:
		return ctx.Status(e.Code).JSON(responseBody{Success: false, Error: e.Message})
	case error:
		return ctx.Status(fiber.StatusBadRequest).JSON(responseBody{Success: false, Error: e.Error()})
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(responseBody{Success: false, Error: "internal server error"})
	}
}

func ConvertString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

func ConvertInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		i, _ := strconv.Atoi(n)
		return i
	default:
		return 0
	}
}
