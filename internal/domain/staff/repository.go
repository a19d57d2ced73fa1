package staff

import "context"

type StaffRepository interface {
	List(ctx context.Context) ([]Member, error)
	GetByID(ctx context.Context, id string) (Member, error)
	GetByName(ctx context.Context, name string) (Member, error)
	Create(ctx context.Context, m Member) (Member, error)
	Update(ctx context.Context, m Member) (Member, error)
	Delete(ctx context.Context, id string) error
}
