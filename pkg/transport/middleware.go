package transport

// Middleware adds cross-cutting behavior around a Recommender. The first
// middleware in a chain is the outermost wrapper, so it runs first on the
// way in and last on the way out.
type Middleware func(Recommender) Recommender

// Chain folds a middleware list into a single middleware.
// Chain(a, b, c) yields a(b(c(handler))).
func Chain(middlewares ...Middleware) Middleware {
	return func(next Recommender) Recommender {
		wrapped := next
		for i := len(middlewares) - 1; i >= 0; i-- {
			wrapped = middlewares[i](wrapped)
		}
		return wrapped
	}
}
