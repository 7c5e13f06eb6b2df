package audit

import "context"

type ctxKey struct{}

// RequestContext carries the identity and request metadata of the actor
// behind the current request. It lives in the request's context.Context, so
// it is scoped to a single in-flight request and cannot leak into another
// one, including on error paths.
type RequestContext struct {
	UsuarioID    *uint
	UsuarioEmail string
	IPAddress    string
	Endpoint     string
}

// Empty reports whether the context carries no identity information at all.
func (rc RequestContext) Empty() bool {
	return rc.UsuarioID == nil && rc.UsuarioEmail == "" && rc.IPAddress == "" && rc.Endpoint == ""
}

func WithRequestContext(ctx context.Context, rc RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

func FromContext(ctx context.Context) (RequestContext, bool) {
	rc, ok := ctx.Value(ctxKey{}).(RequestContext)
	return rc, ok
}
