package model

import "time"

// Escena is a physical location tied to exactly one expediente. Whether it
// can be created or modified depends on the parent expediente's review state.
type Escena struct {
	ID              uint      `gorm:"primaryKey"`
	IDInvestigacion uint      `gorm:"index;not null"`
	NombreEscena    string    `gorm:"size:200;not null"`
	DireccionEscena string    `gorm:"size:300;not null"`
	FechaHoraInicio time.Time `gorm:"not null"`
	FechaHoraFin    *time.Time
	Descripcion     *string
	Activo          bool `gorm:"not null;default:true"`

	UsuarioCreacion      string    `gorm:"size:50;not null"`
	FechaCreacion        time.Time `gorm:"autoCreateTime"`
	UsuarioActualizacion *string   `gorm:"size:50"`
	FechaActualizacion   *time.Time
}
