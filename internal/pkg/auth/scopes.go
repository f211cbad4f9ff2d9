package auth

import (
	"fmt"

	"go.uber.org/zap"

	"orders/internal/pkg/errs"
)

// Scopes required by the order endpoints.
const (
	ScopeOrdersRead  = "orders.read"
	ScopeOrdersWrite = "orders.write"
)

// ScopeAuthorizer decides whether an authenticated identity may perform
// an operation, based on the scopes the operation requires.
type ScopeAuthorizer struct {
	log *zap.SugaredLogger
}

// NewScopeAuthorizer creates a scope authorizer.
func NewScopeAuthorizer(log *zap.SugaredLogger) *ScopeAuthorizer {
	return &ScopeAuthorizer{log: log}
}

// Authorize allows the operation when every required scope was granted to
// the identity. An empty requirement always allows. The first missing
// scope, in the order the caller declared them, is reported in the
// failure detail. Authentication has already succeeded at this point, so
// a failure here is forbidden, not unauthorized.
func (a *ScopeAuthorizer) Authorize(identity Identity, required ...string) error {
	for _, scope := range required {
		if !identity.HasScope(scope) {
			a.log.Warnw("insufficient permissions",
				"required", required,
				"user_scopes", identity.Scopes,
				"user", identity.Subject,
			)
			return errs.NewForbiddenError(fmt.Sprintf("Insufficient permissions. Required scope: %s", scope))
		}
	}

	if len(required) > 0 {
		a.log.Infow("authorization successful", "user", identity.Subject, "scopes", required)
	}
	return nil
}
