package model

import "context"

// ContextManager moves the authenticated identity in and out of request
// contexts. Downstream handlers read the identity from the context only and
// never re-derive it from the token.
type ContextManager interface {
	SetClaims(ctx context.Context, claims TokenClaims) context.Context
	GetClaims(ctx context.Context) (TokenClaims, bool)
}
