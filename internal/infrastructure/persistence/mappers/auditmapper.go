package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"sips/internal/domain/audit"
	"sips/internal/infrastructure/persistence/models"
)

// AuditMapper handles the conversion between audit log domain entities and
// persistence models.
type AuditMapper interface {
	// ToModel converts an audit log entry to a persistence model.
	ToModel(e *audit.LogEntry) *models.AuditLogModel

	// ToDomain converts an audit log persistence model to a domain entity.
	ToDomain(model *models.AuditLogModel) (*audit.LogEntry, error)
}

// AuditMapperImpl is the concrete implementation of AuditMapper.
type AuditMapperImpl struct{}

// NewAuditMapper creates a new AuditMapper.
func NewAuditMapper() AuditMapper {
	return &AuditMapperImpl{}
}

// ToModel converts an audit log entry to a persistence model.
func (m *AuditMapperImpl) ToModel(e *audit.LogEntry) *models.AuditLogModel {
	model := &models.AuditLogModel{
		ID:        e.ID(),
		UserID:    e.UserID(),
		Action:    e.Action(),
		Table:     e.TableName(),
		RecordID:  e.RecordID(),
		CreatedAt: e.CreatedAt().UnixMilli(),
	}

	if details := e.Details(); len(details) > 0 {
		detailsJSON, _ := json.Marshal(details)
		model.Details = datatypes.JSON(detailsJSON)
	}

	return model
}

// ToDomain converts an audit log persistence model to a domain entity.
func (m *AuditMapperImpl) ToDomain(model *models.AuditLogModel) (*audit.LogEntry, error) {
	var details map[string]interface{}
	if len(model.Details) > 0 {
		if err := json.Unmarshal(model.Details, &details); err != nil {
			return nil, fmt.Errorf("failed to unmarshal audit details (id=%d): %w", model.ID, err)
		}
	}

	return audit.ReconstructLogEntry(
		model.ID,
		model.UserID,
		model.Action,
		model.Table,
		model.RecordID,
		details,
		convertMillisToTime(model.CreatedAt),
	)
}
