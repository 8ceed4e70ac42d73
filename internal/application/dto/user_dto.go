package dto

// RoleFlagsRequest flags de elevación en payloads de usuario. Son un filtro de
// capacidades: los flags que el tier del actor no permite otorgar se ignoran
// en silencio, no se rechazan.
type RoleFlagsRequest struct {
	BasicUser    *bool `json:"basicUser"`
	CompanyAdmin *bool `json:"companyAdmin"`
	Admin        *bool `json:"admin"`
	SuperAdmin   *bool `json:"superAdmin"`
}

// CreateUserRequest entrada para crear un usuario (registro anónimo o creación
// autenticada). Company es opcional: ausente, se hereda la empresa del actor.
type CreateUserRequest struct {
	Username string             `json:"username" validate:"required,min=6,max=255"`
	Email    string             `json:"email" validate:"required,email,max=255"`
	Password string             `json:"password" validate:"required,password"`
	Fname    string             `json:"fname" validate:"required,min=1,max=255"`
	Lname    string             `json:"lname" validate:"required,min=1,max=255"`
	Company  *CompanyRefRequest `json:"company"`
	RoleFlagsRequest
}

// UpdateUserRequest entrada para editar el perfil. Campos nil no se tocan.
// Username y email son inmutables después del registro.
type UpdateUserRequest struct {
	Fname    *string `json:"fname" validate:"omitempty,min=1,max=255"`
	Lname    *string `json:"lname" validate:"omitempty,min=1,max=255"`
	Password *string `json:"password" validate:"omitempty,password"`
	RoleFlagsRequest
}

// UserResponse salida de un usuario: ni hash de contraseña ni ID interno.
type UserResponse struct {
	Code         string           `json:"code"`
	Username     string           `json:"username"`
	Email        string           `json:"email"`
	Fname        string           `json:"fname"`
	Lname        string           `json:"lname"`
	FullName     string           `json:"fullName"`
	CompanyAdmin bool             `json:"companyAdmin"`
	Admin        bool             `json:"admin"`
	SuperAdmin   bool             `json:"superAdmin"`
	Company      *CompanyResponse `json:"company,omitempty"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT más el usuario autenticado; Location apunta al
// recurso del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
