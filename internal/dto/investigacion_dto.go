package dto

import "time"

type CrearInvestigacionRequest struct {
	CodigoCaso        string    `json:"codigo_caso"        validate:"required,min=3,max=50"`
	NombreCaso        string    `json:"nombre_caso"        validate:"required,min=3,max=200"`
	FechaInicio       time.Time `json:"fecha_inicio"       validate:"required"`
	IDFiscalia        uint      `json:"id_fiscalia"        validate:"required,gt=0"`
	DescripcionHechos *string   `json:"descripcion_hechos"`
}

type ActualizarInvestigacionRequest struct {
	NombreCaso        string     `json:"nombre_caso"        validate:"omitempty,min=3,max=200"`
	FechaInicio       *time.Time `json:"fecha_inicio"`
	IDFiscalia        *uint      `json:"id_fiscalia"        validate:"omitempty,gt=0"`
	DescripcionHechos *string    `json:"descripcion_hechos"`
}

type RechazarInvestigacionRequest struct {
	Justificacion string `json:"justificacion" validate:"required"`
}

// InvestigacionFilters narrows list queries. All fields optional.
type InvestigacionFilters struct {
	Activo            *bool  `form:"activo"`
	EstadoRevision    string `form:"estado_revision"`
	IDUsuarioRegistro *uint  `form:"id_usuario_registro"`
	IDFiscalia        *uint  `form:"id_fiscalia"`
}

type InvestigacionResponse struct {
	IDInvestigacion       uint       `json:"id_investigacion"`
	CodigoCaso            string     `json:"codigo_caso"`
	NombreCaso            string     `json:"nombre_caso"`
	FechaInicio           time.Time  `json:"fecha_inicio"`
	IDFiscalia            uint       `json:"id_fiscalia"`
	NombreFiscalia        string     `json:"nombre_fiscalia,omitempty"`
	DescripcionHechos     *string    `json:"descripcion_hechos,omitempty"`
	EstadoRevisionDicri   string     `json:"estado_revision_dicri"`
	IDUsuarioRegistro     uint       `json:"id_usuario_registro"`
	IDUsuarioRevision     *uint      `json:"id_usuario_revision,omitempty"`
	JustificacionRevision *string    `json:"justificacion_revision,omitempty"`
	FechaRevision         *time.Time `json:"fecha_revision,omitempty"`
	Activo                bool       `json:"activo"`
}
