package v1

import (
	"github.com/ecoechos/backend/internal/types"
	"github.com/ecoechos/backend/internal/uuid"
)

type URIID struct {
	ID uuid.UUID `uri:"id"` // ID of the user
}

type URIDay struct {
	ID   uuid.UUID  `uri:"id"`                                             // ID of the user
	Date types.Date `uri:"date" swaggertype:"string" example:"2025-03-14"` // Day of the record
}

type URIMonth struct {
	ID    uuid.UUID   `uri:"id"`                                           // ID of the user
	Month types.Month `uri:"month" swaggertype:"string" example:"2025-03"` // Year and month
}

type URIRankingMonth struct {
	Month types.Month `uri:"month" swaggertype:"string" example:"2025-03"` // Year and month
}
