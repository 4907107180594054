package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse cuerpo de error HTTP. Los campos opcionales llevan exactamente
// los datos que una llamada de seguimiento necesita: el id en colisión para
// conflictos, los conteos y estrategias válidas para bloqueos por dependientes.
type ErrorResponse struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	ExistingID *int64         `json:"existing_id,omitempty"`
	Counts     map[string]int `json:"counts,omitempty"`
	Strategies []string       `json:"strategies,omitempty"`
}

// DeactivateRequest cuerpo opcional de una desactivación: la estrategia
// elegida tras un bloqueo por dependientes.
type DeactivateRequest struct {
	Strategy string `json:"strategy"`
}

// ReactivateSwapRequest cuerpo de un swap: el registro activo a desplazar y,
// si este tiene dependientes, la estrategia para resolverlos.
type ReactivateSwapRequest struct {
	CurrentID int64  `json:"current_id"`
	Strategy  string `json:"strategy"`
}
