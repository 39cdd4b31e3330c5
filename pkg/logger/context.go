package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKeyDetails struct{}

type ctxValue struct {
	Super   *ctxValue
	Details []Detail
}

// ContextWith attaches details to the context,
// and every entry logged with the returned context will carry them.
func ContextWith(ctx context.Context, ds ...Detail) context.Context {
	if len(ds) == 0 {
		return ctx
	}
	if ctx == nil {
		ctx = context.Background()
	}
	v := &ctxValue{Details: ds}
	if prev, ok := lookupValue(ctx); ok {
		v.Super = prev
	}
	return context.WithValue(ctx, ctxKeyDetails{}, v)
}

// getDetailsFromContext returns the details attached to the context, outermost first.
func getDetailsFromContext(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}
	v, ok := lookupValue(ctx)
	if !ok {
		return nil
	}
	var chain []*ctxValue
	for ; v != nil; v = v.Super {
		chain = append(chain, v)
	}
	var fs []zap.Field
	for i := len(chain) - 1; 0 <= i; i-- {
		for _, d := range chain[i].Details {
			fs = d.appendTo(fs)
		}
	}
	return fs
}

func lookupValue(ctx context.Context) (*ctxValue, bool) {
	ptr, ok := ctx.Value(ctxKeyDetails{}).(*ctxValue)
	return ptr, ok
}
