package user

import "context"

type UserRepository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByOpenID(ctx context.Context, openID string) (*User, error)
	List(ctx context.Context, filter UserFilter) ([]*User, int64, error)
	Count(ctx context.Context) (int64, error)
}

type UserFilter struct {
	Role     *string
	Tier     *SubscriptionTier
	Search   string
	Page     int
	PageSize int
}
