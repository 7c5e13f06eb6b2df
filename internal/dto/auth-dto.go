package dto

type LoginRequest struct {
	Correo     string `json:"correo" validate:"required,email"`
	Contrasena string `json:"contraseña" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// TokenClaims is the decoded bearer token payload placed in the request
// locals by the auth middleware.
type TokenClaims struct {
	UsuarioID uint   `json:"id_usuario"`
	Correo    string `json:"correo"`
	Rol       string `json:"rol"`
}

func (c TokenClaims) EsAdmin() bool {
	return c.Rol == "admin" || c.Rol == "super_admin"
}

func (c TokenClaims) EsSuperAdmin() bool {
	return c.Rol == "super_admin"
}
