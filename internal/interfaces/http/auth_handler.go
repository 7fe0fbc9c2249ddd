package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/auth"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/dto"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain"
)

// AuthHandler maneja registro, login y validación de sesión.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register crea un usuario. El primer usuario del sistema se registra sin
// token y queda como admin; los siguientes requieren un admin autenticado.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if ok, err := validateBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Register(GetRole(c), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login autentica por email y contraseña y devuelve el token JWT.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if ok, err := validateBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Login(in)
	if err != nil {
		// Usuario inexistente y contraseña incorrecta responden igual.
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"})
		}
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Validate devuelve el usuario del token actual.
func (h *AuthHandler) Validate(c *fiber.Ctx) error {
	out, err := h.uc.Validate(GetUserID(c))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}
