package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ContactoRequest struct {
	Nombre    string  `json:"nombre"   validate:"required,min=1,max=120"`
	Apellido  *string `json:"apellido" validate:"omitempty,max=120"`
	Telefono  string  `json:"telefono" validate:"required,min=3,max=40"`
	Email     *string `json:"email"    validate:"omitempty,email"`
	Ubicacion *string `json:"ubicacion"`

	Estado      string   `json:"estado"       validate:"omitempty,oneof=Nuevo Contactado 'En reunion' Negociacion Cerrado Perdido"`
	TipoCliente *string  `json:"tipo_cliente"`
	FormaPago   *string  `json:"forma_pago"`
	Motivacion  []string `json:"motivacion"`
	MotivacionOtro *string `json:"motivacion_otro"`
	Notas          *string `json:"notas"`

	SeguimientoFecha        *string `json:"seguimiento_fecha"`
	SeguimientoRecordatorio bool    `json:"seguimiento_recordatorio"`
	SeguimientoPrioridad    string  `json:"seguimiento_prioridad" validate:"omitempty,oneof=Alta Media Baja"`
	SeguimientoHecho        bool    `json:"seguimiento_hecho"`

	// Link sets replace the current ones in full; the relink runs inside one
	// transaction so a failure never leaves a half-updated link set.
	TagIDs       []string `json:"tag_ids"       validate:"omitempty,dive,uuid"`
	CaptacionIDs []string `json:"captacion_ids" validate:"omitempty,dive,uuid"`
}

type ContactoTagRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=60"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ContactoTagResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// ContactoCaptacionResponse is the linked-listing summary in a contacto row.
type ContactoCaptacionResponse struct {
	ID        string `json:"id"`
	Direccion string `json:"direccion"`
	Operacion string `json:"operacion"`
}

type ContactoResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Nombre    string  `json:"nombre"`
	Apellido  *string `json:"apellido"`
	Telefono  string  `json:"telefono"`
	Email     *string `json:"email"`
	Ubicacion *string `json:"ubicacion"`

	Estado         string   `json:"estado"`
	TipoCliente    *string  `json:"tipo_cliente"`
	FormaPago      *string  `json:"forma_pago"`
	Motivacion     []string `json:"motivacion"`
	MotivacionOtro *string  `json:"motivacion_otro"`
	Notas          *string  `json:"notas"`

	SeguimientoFecha        *string `json:"seguimiento_fecha"`
	SeguimientoRecordatorio bool    `json:"seguimiento_recordatorio"`
	SeguimientoPrioridad    string  `json:"seguimiento_prioridad"`
	SeguimientoHecho        bool    `json:"seguimiento_hecho"`

	Tags        []ContactoTagResponse       `json:"tags"`
	Captaciones []ContactoCaptacionResponse `json:"captaciones"`
	CreatedAt   string                      `json:"created_at"`
}

type ContactoListResponse struct {
	Data  []ContactoResponse `json:"data"`
	Total int                `json:"total"`
}
