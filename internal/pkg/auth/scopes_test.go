package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"orders/internal/pkg/auth"
	"orders/internal/pkg/errs"
)

func TestScopeAuthorizer_Authorize(t *testing.T) {
	authorizer := auth.NewScopeAuthorizer(zap.NewNop().Sugar())

	t.Run("should allow when no scopes are required", func(t *testing.T) {
		err := authorizer.Authorize(auth.Identity{Subject: "alice"})

		require.NoError(t, err)
	})

	t.Run("should allow when every required scope is granted", func(t *testing.T) {
		identity := auth.Identity{
			Subject: "alice",
			Scopes:  []string{auth.ScopeOrdersRead, auth.ScopeOrdersWrite},
		}

		err := authorizer.Authorize(identity, auth.ScopeOrdersRead, auth.ScopeOrdersWrite)

		require.NoError(t, err)
	})

	t.Run("should deny with forbidden when a scope is missing", func(t *testing.T) {
		identity := auth.Identity{Subject: "alice", Scopes: []string{auth.ScopeOrdersRead}}

		err := authorizer.Authorize(identity, auth.ScopeOrdersWrite)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)
		assert.NotErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("should report the first missing scope in declaration order", func(t *testing.T) {
		identity := auth.Identity{Subject: "alice", Scopes: []string{auth.ScopeOrdersWrite}}

		err := authorizer.Authorize(identity, auth.ScopeOrdersRead, auth.ScopeOrdersWrite)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Required scope: orders.read")
	})
}
