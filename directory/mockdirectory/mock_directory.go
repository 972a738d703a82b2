package mockdirectory

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Resolver struct {
	mock.Mock
}

func (r *Resolver) Resolve(ctx context.Context, id string) (string, error) {
	args := r.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (r *Resolver) Invalidate() {
	r.Called()
}
