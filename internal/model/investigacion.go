package model

import "time"

// Review states for an expediente. EN_REGISTRO is the initial state;
// APROBADO is terminal. RECHAZADO can re-enter PENDIENTE_REVISION or be
// approved directly.
const (
	EstadoEnRegistro        = "EN_REGISTRO"
	EstadoPendienteRevision = "PENDIENTE_REVISION"
	EstadoAprobado          = "APROBADO"
	EstadoRechazado         = "RECHAZADO"
)

// EstadosRevision lists the valid review states in display order.
func EstadosRevision() []string {
	return []string{EstadoEnRegistro, EstadoPendienteRevision, EstadoAprobado, EstadoRechazado}
}

// EstadoRevisionValido reports whether s is one of the four review states.
func EstadoRevisionValido(s string) bool {
	switch s {
	case EstadoEnRegistro, EstadoPendienteRevision, EstadoAprobado, EstadoRechazado:
		return true
	}
	return false
}

// Investigacion is the case-file aggregate root ("expediente"). Its review
// state gates mutation of its escenas and indicios.
type Investigacion struct {
	ID                    uint      `gorm:"primaryKey"`
	CodigoCaso            string    `gorm:"uniqueIndex;size:50;not null"`
	NombreCaso            string    `gorm:"size:200;not null"`
	FechaInicio           time.Time `gorm:"not null"`
	IDFiscalia            uint      `gorm:"index;not null"`
	DescripcionHechos     *string
	EstadoRevisionDicri   string `gorm:"size:30;not null;default:EN_REGISTRO"`
	IDUsuarioRegistro     uint   `gorm:"not null"`
	IDUsuarioRevision     *uint
	JustificacionRevision *string
	FechaRevision         *time.Time
	Activo                bool `gorm:"not null;default:true"`

	UsuarioCreacion      string    `gorm:"size:50;not null"`
	FechaCreacion        time.Time `gorm:"autoCreateTime"`
	UsuarioActualizacion *string   `gorm:"size:50"`
	FechaActualizacion   *time.Time

	// NombreFiscalia is filled by list queries that join fiscalias; it is
	// not a column of this table.
	NombreFiscalia string `gorm:"->;-:migration"`
}

func (Investigacion) TableName() string { return "investigaciones" }
