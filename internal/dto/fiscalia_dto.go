package dto

type CrearFiscaliaRequest struct {
	NombreFiscalia string  `json:"nombre_fiscalia" validate:"required,min=3,max=200"`
	Direccion      *string `json:"direccion"       validate:"omitempty,max=300"`
	Telefono       *string `json:"telefono"        validate:"omitempty,max=30"`
}

type ActualizarFiscaliaRequest struct {
	NombreFiscalia string  `json:"nombre_fiscalia" validate:"omitempty,min=3,max=200"`
	Direccion      *string `json:"direccion"       validate:"omitempty,max=300"`
	Telefono       *string `json:"telefono"        validate:"omitempty,max=30"`
	Activo         *bool   `json:"activo"`
}

type FiscaliaResponse struct {
	IDFiscalia     uint    `json:"id_fiscalia"`
	NombreFiscalia string  `json:"nombre_fiscalia"`
	Direccion      *string `json:"direccion,omitempty"`
	Telefono       *string `json:"telefono,omitempty"`
	Activo         bool    `json:"activo"`
}

type CrearTipoIndicioRequest struct {
	NombreTipo  string  `json:"nombre_tipo" validate:"required,min=3,max=100"`
	Descripcion *string `json:"descripcion"`
}

type ActualizarTipoIndicioRequest struct {
	NombreTipo  string  `json:"nombre_tipo" validate:"omitempty,min=3,max=100"`
	Descripcion *string `json:"descripcion"`
	Activo      *bool   `json:"activo"`
}

type TipoIndicioResponse struct {
	IDTipoIndicio uint    `json:"id_tipo_indicio"`
	NombreTipo    string  `json:"nombre_tipo"`
	Descripcion   *string `json:"descripcion,omitempty"`
	Activo        bool    `json:"activo"`
}
