package aigen

import "context"

type CreationRepository interface {
	Save(ctx context.Context, creation *Creation) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]*Creation, error)
}
