package model

import "time"

// Perfil groups UI-visible capabilities (module sets). Authorization on
// endpoints is driven by roles; perfiles shape what the frontend renders.
type Perfil struct {
	ID           uint   `gorm:"primaryKey"`
	NombrePerfil string `gorm:"uniqueIndex;size:100;not null"`
	Descripcion  *string
	Activo       bool `gorm:"not null;default:true"`

	UsuarioCreacion      string    `gorm:"size:50;not null"`
	FechaCreacion        time.Time `gorm:"autoCreateTime"`
	UsuarioActualizacion *string   `gorm:"size:50"`
	FechaActualizacion   *time.Time
}

func (Perfil) TableName() string { return "perfiles" }

// Role names referenced by the route layer.
const (
	RolTecnicoDicri     = "TECNICO_DICRI"
	RolCoordinadorDicri = "COORDINADOR_DICRI"
	RolAdmin            = "ADMIN"
)

// Role drives coarse endpoint authorization (TECNICO_DICRI,
// COORDINADOR_DICRI, ADMIN).
type Role struct {
	ID          uint   `gorm:"primaryKey"`
	NombreRole  string `gorm:"uniqueIndex;size:50;not null"`
	Descripcion *string
	Activo      bool `gorm:"not null;default:true"`

	UsuarioCreacion      string    `gorm:"size:50;not null"`
	FechaCreacion        time.Time `gorm:"autoCreateTime"`
	UsuarioActualizacion *string   `gorm:"size:50"`
	FechaActualizacion   *time.Time
}

// Modulo is a navigable application section. Modules form a tree via
// IDModuloPadre and are shown ordered by Orden.
type Modulo struct {
	ID            uint   `gorm:"primaryKey"`
	NombreModulo  string `gorm:"size:100;not null"`
	Descripcion   *string
	Ruta          *string `gorm:"size:200"`
	Icono         *string `gorm:"size:50"`
	Orden         int     `gorm:"not null;default:0"`
	IDModuloPadre *uint
	Activo        bool `gorm:"not null;default:true"`

	UsuarioCreacion      string    `gorm:"size:50;not null"`
	FechaCreacion        time.Time `gorm:"autoCreateTime"`
	UsuarioActualizacion *string   `gorm:"size:50"`
	FechaActualizacion   *time.Time
}

// UsuarioPerfil links users to perfiles (many-to-many).
type UsuarioPerfil struct {
	ID        uint `gorm:"primaryKey"`
	IDUsuario uint `gorm:"index;not null"`
	IDPerfil  uint `gorm:"index;not null"`

	UsuarioCreacion string    `gorm:"size:50;not null"`
	FechaCreacion   time.Time `gorm:"autoCreateTime"`
}

func (UsuarioPerfil) TableName() string { return "usuario_perfiles" }

// UsuarioRole links users to roles (many-to-many).
type UsuarioRole struct {
	ID        uint `gorm:"primaryKey"`
	IDUsuario uint `gorm:"index;not null"`
	IDRole    uint `gorm:"index;not null"`

	UsuarioCreacion string    `gorm:"size:50;not null"`
	FechaCreacion   time.Time `gorm:"autoCreateTime"`
}

// PerfilModulo links perfiles to the modules they can see.
type PerfilModulo struct {
	ID       uint `gorm:"primaryKey"`
	IDPerfil uint `gorm:"index;not null"`
	IDModulo uint `gorm:"index;not null"`

	UsuarioCreacion string    `gorm:"size:50;not null"`
	FechaCreacion   time.Time `gorm:"autoCreateTime"`
}
