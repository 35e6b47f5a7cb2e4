package middleware

import (
	"fmt"
	"strings"

	"rental-service/src/pkg/log"
	"rental-service/src/pkg/token"
	"rental-service/src/pkg/utils"

	httpError "rental-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

const userContextKey = "auth"

// NewAuth verifies the Bearer token and stores the decoded claim on the
// request context for controllers to pick up via GetUser.
func NewAuth(cfg *viper.Viper, logger log.Log) fiber.Handler {
	secret := []byte(cfg.GetString("jwt.secret"))

	return func(ctx *fiber.Ctx) error {
		claim, err := parseBearer(ctx.Get(fiber.HeaderAuthorization), secret)
		if err != nil {
			logger.Error("auth-middleware", err.Error(), "NewAuth", ctx.Path())
			errObj := httpError.NewUnauthorized()
			errObj.Message = "invalid or missing token"
			return utils.ResponseError(errObj, ctx)
		}

		ctx.Locals(userContextKey, claim)
		return ctx.Next()
	}
}

// NewAdminGate rejects requests whose claim does not carry the admin
// role. Must be mounted after NewAuth.
func NewAdminGate() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claim := GetUser(ctx)
		if claim == nil || !claim.IsAdmin() {
			errObj := httpError.NewForbidden()
			errObj.Message = "admin access required"
			return utils.ResponseError(errObj, ctx)
		}
		return ctx.Next()
	}
}

func GetUser(ctx *fiber.Ctx) *token.Claim {
	claim, _ := ctx.Locals(userContextKey).(*token.Claim)
	return claim
}

func parseBearer(header string, secret []byte) (*token.Claim, error) {
	raw := strings.TrimSpace(header)
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		raw = strings.TrimSpace(raw[7:])
	}
	if raw == "" {
		return nil, fmt.Errorf("missing bearer token")
	}

	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}

	claim := &token.Claim{}
	claim.Iss, _ = claims["iss"].(string)
	claim.Aud, _ = claims["aud"].(string)
	if meta, ok := claims["metadata"].(map[string]interface{}); ok {
		claim.Metadata.UserID, _ = meta["user_id"].(string)
		claim.Metadata.FullName, _ = meta["full_name"].(string)
		claim.Metadata.Email, _ = meta["email"].(string)
		claim.Metadata.Role, _ = meta["role"].(string)
	}
	if claim.Metadata.UserID == "" {
		return nil, fmt.Errorf("token has no user id")
	}
	return claim, nil
}
