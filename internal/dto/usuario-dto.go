package dto

type UsuarioCreate struct {
	Correo     string `json:"correo" validate:"required,email"`
	Contrasena string `json:"contraseña" validate:"required,min=8"`
	Rol        string `json:"rol"`
}

type UsuarioUpdate struct {
	Correo          *string `json:"correo,omitempty"`
	Contrasena      *string `json:"contraseña,omitempty"`
	Rol             *string `json:"rol,omitempty"`
	EmailVerificado *string `json:"email_verificado,omitempty"`
}

type UsuarioFilter struct {
	Rol             string
	Correo          string
	EmailVerificado string
}

type ConfirmarCuentaRequest struct {
	Correo string `json:"correo" validate:"required,email"`
	Pin    string `json:"pin" validate:"required,len=6"`
}

type CorreoRequest struct {
	Correo string `json:"correo" validate:"required,email"`
}

type ValidarPinRequest struct {
	Correo string `json:"correo" validate:"required,email"`
	Pin    string `json:"pin" validate:"required,len=6"`
}

type CambiarContrasenaRequest struct {
	Correo          string `json:"correo" validate:"required,email"`
	Pin             string `json:"pin" validate:"required,len=6"`
	NuevaContrasena string `json:"nueva_contraseña" validate:"required,min=8"`
}

type CambiarContrasenaAutenticadoRequest struct {
	ContrasenaActual string `json:"contraseña_actual" validate:"required"`
	NuevaContrasena  string `json:"nueva_contraseña" validate:"required,min=8"`
}

type MensajeResponse struct {
	Mensaje string `json:"mensaje"`
}

type ValidarPinResponse struct {
	Valido  bool   `json:"valido"`
	Mensaje string `json:"mensaje"`
}
