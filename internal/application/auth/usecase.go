package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/dto"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/entity"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/repository"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y validación.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario. El registro sin autenticación solo se permite
// mientras no exista ningún usuario, y ese primer usuario es admin siempre;
// después solo un admin puede registrar (callerRole == RoleAdmin).
func (uc *AuthUseCase) Register(callerRole string, in dto.RegisterRequest) (*dto.UserResponse, error) {
	total, err := uc.userRepo.Count()
	if err != nil {
		return nil, err
	}

	role := in.Role
	if total == 0 {
		role = entity.RoleAdmin
	} else {
		if callerRole != entity.RoleAdmin {
			return nil, domain.ErrForbidden
		}
		if role == "" {
			role = entity.RoleWorker
		}
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}

	if existing, _ := uc.userRepo.GetByEmail(in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if existing, _ := uc.userRepo.GetByName(in.Name); existing != nil {
		return nil, domain.ErrNameAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Validate devuelve el usuario del token ya verificado por el middleware.
func (uc *AuthUseCase) Validate(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
