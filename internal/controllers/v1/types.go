package v1

import (
	pema_uuid "github.com/pema-app/backend/internal/uuid"
)

type URIID struct {
	ID pema_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}
