package usecases

import (
	"context"

	"sips/internal/domain/audit"
	"sips/internal/shared/logger"
	"sips/internal/shared/utils"
)

type ListAuditLogsResult struct {
	Entries  []*audit.LogEntry
	Total    int64
	Page     int
	PageSize int
}

type ListAuditLogsUseCase struct {
	auditRepo audit.AuditLogRepository
	logger    logger.Interface
}

func NewListAuditLogsUseCase(
	auditRepo audit.AuditLogRepository,
	logger logger.Interface,
) *ListAuditLogsUseCase {
	return &ListAuditLogsUseCase{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

func (uc *ListAuditLogsUseCase) Execute(ctx context.Context, page, pageSize int) (*ListAuditLogsResult, error) {
	pagination := utils.ValidatePagination(page, pageSize)

	entries, total, err := uc.auditRepo.List(ctx, pagination.Page, pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list audit logs", "error", err)
		return nil, err
	}

	return &ListAuditLogsResult{
		Entries:  entries,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
