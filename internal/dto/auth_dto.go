package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	NombreUsuario string `json:"nombre_usuario" validate:"required,min=1,max=50"`
	Clave         string `json:"clave"          validate:"required,min=4"`
}

type CambiarClaveRequest struct {
	ClaveActual string `json:"clave_actual" validate:"required"`
	ClaveNueva  string `json:"clave_nueva"  validate:"required,min=8"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PerfilResponse struct {
	IDPerfil     uint    `json:"id_perfil"`
	NombrePerfil string  `json:"nombre_perfil"`
	Descripcion  *string `json:"descripcion,omitempty"`
}

type RoleResponse struct {
	IDRole      uint    `json:"id_role"`
	NombreRole  string  `json:"nombre_role"`
	Descripcion *string `json:"descripcion,omitempty"`
}

type ModuloResponse struct {
	IDModulo      uint    `json:"id_modulo"`
	NombreModulo  string  `json:"nombre_modulo"`
	Ruta          *string `json:"ruta,omitempty"`
	Icono         *string `json:"icono,omitempty"`
	Orden         int     `json:"orden"`
	IDModuloPadre *uint   `json:"id_modulo_padre,omitempty"`
}

type LoginResponse struct {
	Token    string           `json:"token"`
	Usuario  UsuarioResponse  `json:"usuario"`
	Perfiles []PerfilResponse `json:"perfiles"`
	Roles    []RoleResponse   `json:"roles"`
	Modulos  []ModuloResponse `json:"modulos"`
}
