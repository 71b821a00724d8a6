package model

import "time"

// Fiscalia is a prosecutorial office owning expedientes.
type Fiscalia struct {
	ID             uint    `gorm:"primaryKey"`
	NombreFiscalia string  `gorm:"size:200;not null"`
	Direccion      *string `gorm:"size:300"`
	Telefono       *string `gorm:"size:30"`
	Activo         bool    `gorm:"not null;default:true"`

	UsuarioCreacion      string    `gorm:"size:50;not null"`
	FechaCreacion        time.Time `gorm:"autoCreateTime"`
	UsuarioActualizacion *string   `gorm:"size:50"`
	FechaActualizacion   *time.Time
}

// TipoIndicio is the evidence-type catalog (arma, documento, fluido, ...).
type TipoIndicio struct {
	ID          uint   `gorm:"primaryKey"`
	NombreTipo  string `gorm:"size:100;not null"`
	Descripcion *string
	Activo      bool `gorm:"not null;default:true"`

	UsuarioCreacion      string    `gorm:"size:50;not null"`
	FechaCreacion        time.Time `gorm:"autoCreateTime"`
	UsuarioActualizacion *string   `gorm:"size:50"`
	FechaActualizacion   *time.Time
}

func (TipoIndicio) TableName() string { return "tipos_indicio" }
