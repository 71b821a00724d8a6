package model

import "time"

// Chain-of-custody states for an indicio. Independent of the expediente's
// review state.
const (
	CustodiaRecolectado = "RECOLECTADO"
	CustodiaEnCustodia  = "EN_CUSTODIA"
	CustodiaEnAnalisis  = "EN_ANALISIS"
	CustodiaAnalizado   = "ANALIZADO"
	CustodiaDevuelto    = "DEVUELTO"
)

// EstadoCustodiaValido reports whether s is a valid custody state.
func EstadoCustodiaValido(s string) bool {
	switch s {
	case CustodiaRecolectado, CustodiaEnCustodia, CustodiaEnAnalisis, CustodiaAnalizado, CustodiaDevuelto:
		return true
	}
	return false
}

// Indicio is a physical evidence item collected at an escena. Mutability is
// gated by the grandparent expediente's review state, through the owning
// escena.
type Indicio struct {
	ID                   uint      `gorm:"primaryKey"`
	CodigoIndicio        string    `gorm:"uniqueIndex;size:50;not null"`
	IDEscena             uint      `gorm:"index;not null"`
	IDTipoIndicio        uint      `gorm:"index;not null"`
	DescripcionCorta     string    `gorm:"size:300;not null"`
	UbicacionEspecifica  *string   `gorm:"size:300"`
	FechaHoraRecoleccion time.Time `gorm:"not null"`
	IDUsuarioRecolector  uint      `gorm:"not null"`
	EstadoActual         string    `gorm:"size:20;not null;default:RECOLECTADO"`
	Activo               bool      `gorm:"not null;default:true"`

	UsuarioCreacion      string    `gorm:"size:50;not null"`
	FechaCreacion        time.Time `gorm:"autoCreateTime"`
	UsuarioActualizacion *string   `gorm:"size:50"`
	FechaActualizacion   *time.Time

	// Read-only join columns for list queries.
	NombreEscena     string `gorm:"->;-:migration"`
	NombreTipo       string `gorm:"->;-:migration"`
	NombreRecolector string `gorm:"->;-:migration"`
}
