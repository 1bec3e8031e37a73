package eventtype

import "context"

// Repository describes event type catalogue reads from use cases.
type Repository interface {
	List(ctx context.Context) ([]EventType, error)
}
