package capabilities

import "context"

// Features conocidas por este servicio.
const (
	// FeatureExtendedHistory habilita ventanas de historial mayores a 30 días.
	FeatureExtendedHistory = "history:extended"
)

// Resolver responde si un usuario tiene una feature según su plan.
type Resolver interface {
	Has(ctx context.Context, userID string, feature string) (bool, error)
}
