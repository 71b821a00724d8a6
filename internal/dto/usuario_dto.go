package dto

import "time"

type CrearUsuarioRequest struct {
	NombreUsuario string `json:"nombre_usuario" validate:"required,min=3,max=50"`
	Clave         string `json:"clave"          validate:"required,min=8"`
	Nombre        string `json:"nombre"         validate:"required,min=2,max=100"`
	Apellido      string `json:"apellido"       validate:"required,min=2,max=100"`
	Email         string `json:"email"          validate:"required,email"`
}

type ActualizarUsuarioRequest struct {
	Nombre   string  `json:"nombre"   validate:"omitempty,min=2,max=100"`
	Apellido string  `json:"apellido" validate:"omitempty,min=2,max=100"`
	Email    string  `json:"email"    validate:"omitempty,email"`
	Activo   *bool   `json:"activo"`
}

type UsuarioResponse struct {
	IDUsuario         uint       `json:"id_usuario"`
	NombreUsuario     string     `json:"nombre_usuario"`
	Nombre            string     `json:"nombre"`
	Apellido          string     `json:"apellido"`
	Email             string     `json:"email"`
	Activo            bool       `json:"activo"`
	CambiarClave      bool       `json:"cambiar_clave"`
	FechaUltimoAcceso *time.Time `json:"fecha_ultimo_acceso,omitempty"`
}
