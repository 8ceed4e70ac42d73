package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agenda-api/internal/application/dto"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/pkg/jwt"
)

// LocalActor key del actor autenticado en c.Locals.
const LocalActor = "actor"

// ActorLoader carga el snapshot del actor a partir del code del token. Se
// recarga de la DB en cada petición para que guards y decisiones vean roles y
// empresa actuales, no los del momento de emisión del token.
type ActorLoader interface {
	GetByCode(code string) (*entity.User, error)
}

// RequireAuth valida el Bearer Token JWT, carga el actor completo y lo deja
// en c.Locals. Sin token o con token inválido responde 401.
func RequireAuth(jwtSecret string, loader ActorLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, errResp := actorFromRequest(c, jwtSecret, loader)
		if errResp != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(*errResp)
		}
		if actor == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		c.Locals(LocalActor, actor)
		return c.Next()
	}
}

// OptionalAuth igual que RequireAuth pero sin header continúa como anónimo
// (actor nil). Un token presente pero inválido sigue siendo 401: nunca se
// degrada en silencio una credencial rota a anónimo.
func OptionalAuth(jwtSecret string, loader ActorLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("Authorization") == "" {
			return c.Next()
		}
		actor, errResp := actorFromRequest(c, jwtSecret, loader)
		if errResp != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(*errResp)
		}
		c.Locals(LocalActor, actor)
		return c.Next()
	}
}

func actorFromRequest(c *fiber.Ctx, jwtSecret string, loader ActorLoader) (*entity.User, *dto.ErrorResponse) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"}
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return nil, &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"}
	}
	userCode, _, _, err := jwt.Parse(jwtSecret, tokenString)
	if err != nil {
		return nil, &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"}
	}
	actor, err := loader.GetByCode(userCode)
	if err != nil {
		return nil, &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "no se pudo cargar el actor"}
	}
	if actor == nil {
		// Usuario eliminado después de emitir el token.
		return nil, &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"}
	}
	return actor, nil
}

// GetActor devuelve el actor autenticado del contexto, o nil si la petición
// es anónima.
func GetActor(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalActor)
	if v == nil {
		return nil
	}
	actor, _ := v.(*entity.User)
	return actor
}
