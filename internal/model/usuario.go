package model

import "time"

// MaxIntentosFallidos is the lockout threshold: once a user accumulates this
// many consecutive failed logins, authentication is denied until an
// administrator resets the counter.
const MaxIntentosFallidos = 5

// Usuario stores system users. Passwords are bcrypt hashes; the plaintext
// never touches the database.
type Usuario struct {
	ID                uint   `gorm:"primaryKey"`
	NombreUsuario     string `gorm:"uniqueIndex;size:50;not null"`
	ClaveHash         string `gorm:"not null"`
	Nombre            string `gorm:"size:100;not null"`
	Apellido          string `gorm:"size:100;not null"`
	Email             string `gorm:"uniqueIndex;size:150;not null"`
	Activo            bool   `gorm:"not null;default:true"`
	CambiarClave      bool   `gorm:"not null;default:false"`
	IntentosFallidos  int    `gorm:"not null;default:0"`
	FechaUltimoAcceso *time.Time

	UsuarioCreacion      string    `gorm:"size:50;not null"`
	FechaCreacion        time.Time `gorm:"autoCreateTime"`
	UsuarioActualizacion *string   `gorm:"size:50"`
	FechaActualizacion   *time.Time
}

// Bloqueado reports whether the account hit the failed-attempt threshold.
func (u *Usuario) Bloqueado() bool {
	return u.IntentosFallidos >= MaxIntentosFallidos
}
