package dto

import "time"

// ReporteRevisionFilters narrows the revision report. Dates are inclusive.
type ReporteRevisionFilters struct {
	FechaInicio    *time.Time `form:"fecha_inicio" time_format:"2006-01-02"`
	FechaFin       *time.Time `form:"fecha_fin"    time_format:"2006-01-02"`
	EstadoRevision string     `form:"estado_revision"`
}

type ReporteRevisionExpediente struct {
	CodigoCaso            string     `json:"codigo_caso"`
	NombreCaso            string     `json:"nombre_caso"`
	NombreFiscalia        string     `json:"nombre_fiscalia"`
	FechaRegistro         time.Time  `json:"fecha_registro"`
	TecnicoRegistra       string     `json:"tecnico_registra"`
	EstadoActual          string     `json:"estado_actual"`
	FechaRevision         *time.Time `json:"fecha_revision,omitempty"`
	CoordinadorRevision   *string    `json:"coordinador_revision,omitempty"`
	JustificacionRevision *string    `json:"justificacion_revision,omitempty"`
}

type ExpedientesPorFiscalia struct {
	NombreFiscalia string `json:"nombre_fiscalia"`
	Total          int64  `json:"total"`
}

type EstadisticasGenerales struct {
	TotalExpedientes      int64                    `json:"total_expedientes"`
	EnRegistro            int64                    `json:"en_registro"`
	PendienteRevision     int64                    `json:"pendiente_revision"`
	Aprobados             int64                    `json:"aprobados"`
	Rechazados            int64                    `json:"rechazados"`
	TotalIndicios         int64                    `json:"total_indicios"`
	ExpedientesPorFiscalia []ExpedientesPorFiscalia `json:"expedientes_por_fiscalia"`
}
