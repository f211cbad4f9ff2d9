// Command token mints HS256 bearer tokens for exercising the API locally.
//
//	go run ./cmd/token -sub alice -scopes orders.read,orders.write -ttl 1h
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"orders/internal/pkg/auth"

	"github.com/golang-jwt/jwt/v5"
)

func main() {
	var (
		subject = flag.String("sub", "test-user", "subject claim of the token")
		scopes  = flag.String("scopes", strings.Join([]string{auth.ScopeOrdersRead, auth.ScopeOrdersWrite}, ","), "comma-separated scopes")
		ttl     = flag.Duration("ttl", time.Hour, "token lifetime")
		secret  = flag.String("secret", "your-secret-key", "HS256 signing secret")
	)
	flag.Parse()

	now := time.Now()
	claims := auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   *subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(*ttl)),
		},
		Scopes: splitScopes(*scopes),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(*secret))
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}

	fmt.Println(signed)
}

func splitScopes(raw string) []string {
	var scopes []string
	for _, scope := range strings.Split(raw, ",") {
		if scope = strings.TrimSpace(scope); scope != "" {
			scopes = append(scopes, scope)
		}
	}
	return scopes
}
