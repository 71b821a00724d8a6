package dto

import "time"

type CrearEscenaRequest struct {
	NombreEscena    string     `json:"nombre_escena"    validate:"required,min=3,max=200"`
	DireccionEscena string     `json:"direccion_escena" validate:"required,min=3,max=300"`
	FechaHoraInicio time.Time  `json:"fecha_hora_inicio" validate:"required"`
	FechaHoraFin    *time.Time `json:"fecha_hora_fin"`
	Descripcion     *string    `json:"descripcion"`
}

type ActualizarEscenaRequest struct {
	NombreEscena    string     `json:"nombre_escena"    validate:"omitempty,min=3,max=200"`
	DireccionEscena string     `json:"direccion_escena" validate:"omitempty,min=3,max=300"`
	FechaHoraInicio *time.Time `json:"fecha_hora_inicio"`
	FechaHoraFin    *time.Time `json:"fecha_hora_fin"`
	Descripcion     *string    `json:"descripcion"`
}

type EscenaResponse struct {
	IDEscena        uint       `json:"id_escena"`
	IDInvestigacion uint       `json:"id_investigacion"`
	NombreEscena    string     `json:"nombre_escena"`
	DireccionEscena string     `json:"direccion_escena"`
	FechaHoraInicio time.Time  `json:"fecha_hora_inicio"`
	FechaHoraFin    *time.Time `json:"fecha_hora_fin,omitempty"`
	Descripcion     *string    `json:"descripcion,omitempty"`
	Activo          bool       `json:"activo"`
}
