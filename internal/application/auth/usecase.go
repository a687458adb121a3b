package auth

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcampos/albaranes-api/internal/application/dto"
	"github.com/jcampos/albaranes-api/internal/application/ports"
	"github.com/jcampos/albaranes-api/internal/domain"
	"github.com/jcampos/albaranes-api/internal/domain/entity"
	"github.com/jcampos/albaranes-api/internal/domain/repository"
	"github.com/jcampos/albaranes-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens (la expiración es fija, ver pkg/jwt).
type JWTConfig struct {
	Secret string
	Issuer string
}

// AuthUseCase casos de uso de identidad: registro, validación de correo,
// login y actualización de perfil/compañía.
type AuthUseCase struct {
	userRepo repository.UserRepository
	email    ports.EmailSender
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(userRepo repository.UserRepository, email ports.EmailSender, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, email: email, jwtCfg: jwtCfg}
}

// generateValidationCode genera un código numérico de exactamente 6 dígitos.
func generateValidationCode() string {
	return fmt.Sprintf("%06d", 100000+rand.IntN(900000))
}

// Register crea un usuario sin validar, envía el código de verificación por
// correo y devuelve un token de sesión. Devuelve ErrEmailAlreadyExists si el
// email ya está registrado.
//
// El envío del correo se espera para detectar fallos duros, pero un fallo de
// entrega no revierte el alta: se registra y el registro sigue adelante.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.TokenResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	code := generateValidationCode()
	user := &entity.User{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Email:          in.Email,
		PasswordHash:   string(hash),
		IsValidated:    false,
		ValidationCode: code,
		Role:           entity.RoleUser,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	if err := uc.email.Send(in.Email, "Código de verificación", "Tu código es: "+code); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("registro: fallo al enviar el código de verificación")
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token}, nil
}

// ValidateEmail consume el código de un solo uso y marca el correo como
// validado. La comparación y la anulación del código son una única operación
// condicional del almacén: un segundo intento con el mismo código falla.
func (uc *AuthUseCase) ValidateEmail(userID, code string) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	ok, err := uc.userRepo.Validate(userID, code)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrValidationCode
	}
	return nil
}

// Login verifica credenciales y devuelve un token de sesión. Un email
// desconocido, un usuario borrado o una contraseña incorrecta producen el
// mismo error: el estado de borrado no se filtra al exterior.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsDeleted {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token}, nil
}

// UpdateProfile reemplaza el perfil del usuario autenticado.
func (uc *AuthUseCase) UpdateProfile(userID string, in dto.ProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.UpdateProfile(userID, entity.Profile{
		FullName: in.FullName,
		Phone:    in.Phone,
		Address:  in.Address,
	})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// UpdateCompany reemplaza los datos de compañía del usuario autenticado.
func (uc *AuthUseCase) UpdateCompany(userID string, in dto.CompanyRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.UpdateCompany(userID, entity.Company{
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
	})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		IsValidated: u.IsValidated,
		Role:        u.Role,
		Company: dto.CompanyResponse{
			Name:    u.Company.Name,
			Address: u.Company.Address,
			Phone:   u.Company.Phone,
		},
		Profile: dto.ProfileResponse{
			FullName: u.Profile.FullName,
			Phone:    u.Profile.Phone,
			Address:  u.Profile.Address,
		},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
