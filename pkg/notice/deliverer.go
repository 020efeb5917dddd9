package notice

import "context"

// Deliverer pushes a notice to whatever renders it.
type Deliverer interface {
	Deliver(ctx context.Context, n Notice) error
}

// DelivererFunc adapts a function to Deliverer.
type DelivererFunc func(ctx context.Context, n Notice) error

func (f DelivererFunc) Deliver(ctx context.Context, n Notice) error {
	return f(ctx, n)
}

// NoOpDeliverer drops notices; hosts read them with Center.Visible instead.
type NoOpDeliverer struct{}

func (NoOpDeliverer) Deliver(context.Context, Notice) error {
	return nil
}
