package auth

import (
	"github.com/jhoicas/agenda-api/internal/application/dto"
	"github.com/jhoicas/agenda-api/internal/domain"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/repository"
	"github.com/jhoicas/agenda-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación. El registro vive en
// usecase.UserUseCase (es la misma operación de creación de usuarios, anónima
// o no); aquí solo login.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Login verifica username/password y genera el JWT. Devuelve el token y un
// puntero (code) al recurso del usuario autenticado. Credenciales inválidas
// son indistinguibles de un usuario inexistente.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	companyCode := ""
	if user.Company != nil {
		companyCode = user.Company.Code
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Code, companyCode, user.HighestRole(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	resp := &dto.UserResponse{
		Code:         u.Code,
		Username:     u.Username,
		Email:        u.Email,
		Fname:        u.Fname,
		Lname:        u.Lname,
		FullName:     u.FullName(),
		CompanyAdmin: u.IsCompanyAdmin(),
		Admin:        u.IsAdmin(),
		SuperAdmin:   u.IsSuperAdmin(),
	}
	if u.Company != nil {
		resp.Company = &dto.CompanyResponse{Code: u.Company.Code, Name: u.Company.Name}
	}
	return resp
}
