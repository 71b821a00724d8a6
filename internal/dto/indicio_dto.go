package dto

import "time"

type CrearIndicioRequest struct {
	CodigoIndicio        string    `json:"codigo_indicio"         validate:"required,min=3,max=50"`
	IDTipoIndicio        uint      `json:"id_tipo_indicio"        validate:"required,gt=0"`
	DescripcionCorta     string    `json:"descripcion_corta"      validate:"required,min=3,max=300"`
	UbicacionEspecifica  *string   `json:"ubicacion_especifica"   validate:"omitempty,max=300"`
	FechaHoraRecoleccion time.Time `json:"fecha_hora_recoleccion" validate:"required"`
}

type ActualizarIndicioRequest struct {
	DescripcionCorta     string     `json:"descripcion_corta"      validate:"omitempty,min=3,max=300"`
	UbicacionEspecifica  *string    `json:"ubicacion_especifica"   validate:"omitempty,max=300"`
	FechaHoraRecoleccion *time.Time `json:"fecha_hora_recoleccion"`
	IDTipoIndicio        *uint      `json:"id_tipo_indicio"        validate:"omitempty,gt=0"`
	EstadoActual         string     `json:"estado_actual"          validate:"omitempty,oneof=RECOLECTADO EN_CUSTODIA EN_ANALISIS ANALIZADO DEVUELTO"`
}

// IndicioFilters narrows list queries.
type IndicioFilters struct {
	Activo        *bool  `form:"activo"`
	IDEscena      *uint  `form:"id_escena"`
	IDTipoIndicio *uint  `form:"id_tipo_indicio"`
	EstadoActual  string `form:"estado_actual"`
}

type IndicioResponse struct {
	IDIndicio            uint      `json:"id_indicio"`
	CodigoIndicio        string    `json:"codigo_indicio"`
	IDEscena             uint      `json:"id_escena"`
	NombreEscena         string    `json:"nombre_escena,omitempty"`
	IDTipoIndicio        uint      `json:"id_tipo_indicio"`
	NombreTipo           string    `json:"nombre_tipo,omitempty"`
	DescripcionCorta     string    `json:"descripcion_corta"`
	UbicacionEspecifica  *string   `json:"ubicacion_especifica,omitempty"`
	FechaHoraRecoleccion time.Time `json:"fecha_hora_recoleccion"`
	IDUsuarioRecolector  uint      `json:"id_usuario_recolector"`
	NombreRecolector     string    `json:"nombre_recolector,omitempty"`
	EstadoActual         string    `json:"estado_actual"`
	Activo               bool      `json:"activo"`
}
