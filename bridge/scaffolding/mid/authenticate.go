package mid

import (
	"context"
	"net/http"
	"strings"

	"github.com/rsalas/taskdeck/bridge/scaffolding/errs"
	"github.com/rsalas/taskdeck/infrastructure/web"
	"github.com/rsalas/taskdeck/sdk/tokens"
)

// Authenticate validates the bearer token on the request and stores the
// authenticated user id in the context for downstream handlers.
func Authenticate(tkn *tokens.Tokens) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			authorization := r.Header.Get("Authorization")
			if authorization == "" {
				return errs.Newf(errs.Unauthenticated, "authorization header missing")
			}

			scheme, token, found := strings.Cut(authorization, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") {
				return errs.Newf(errs.Unauthenticated, "expected bearer authorization")
			}

			claims, err := tkn.Parse(token)
			if err != nil {
				return errs.Newf(errs.Unauthenticated, "invalid token")
			}

			ctx = setUserID(ctx, claims.UserID)

			return next(ctx, r)
		}
	}
}
