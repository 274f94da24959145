package ports

import "context"

// HealthChecker verifica se o armazenamento está acessível
type HealthChecker interface {
	Ping(ctx context.Context) error
}
