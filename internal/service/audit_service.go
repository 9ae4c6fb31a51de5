package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"inventorypro/internal/model"
	"inventorypro/internal/store"
	"inventorypro/pkg/pagination"
)

// AuditService records and lists the action trail behind every mutation
type AuditService interface {
	Record(ctx context.Context, userID, userName, action, entityID, entityName string, details interface{})
	List(ctx context.Context, page, limit int) ([]model.AuditLog, int, error)
}

type auditService struct {
	stores *store.Stores
}

func NewAuditService(stores *store.Stores) AuditService {
	return &auditService{stores: stores}
}

// Record writes one audit entry. Details is marshalled to JSON; a failed
// marshal falls back to an empty object rather than dropping the entry.
func (s *auditService) Record(ctx context.Context, userID, userName, action, entityID, entityName string, details interface{}) {
	payload, err := json.Marshal(details)
	if err != nil {
		payload = []byte("{}")
	}
	_ = s.stores.Audit.Insert(model.AuditLog{
		ID:         uuid.New(),
		UserID:     userID,
		UserName:   userName,
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    string(payload),
		CreatedAt:  time.Now(),
	})
}

// List returns audit entries newest first
func (s *auditService) List(ctx context.Context, page, limit int) ([]model.AuditLog, int, error) {
	all := s.stores.Audit.List()
	// Reverse insertion order so the most recent action leads
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}

	paged, total := pagination.Window(all, pagination.Of(page, limit))
	return paged, total, nil
}
