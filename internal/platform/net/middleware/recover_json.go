package middleware

import (
	stdhttp "net/http"
	"runtime/debug"

	perr "coursedex/internal/platform/errors"
	"coursedex/internal/platform/logger"
	pnet "coursedex/internal/platform/net"
)

// RecoverJSON converts panics into a JSON 500 envelope and logs the stack
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}

			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Str("stack", string(debug.Stack())).
				Msg("panic recovered")

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			status, env := pnet.Failure(perr.PanicErrf("internal error"), reqID)
			pnet.Write(w, status, env)
		}()
		next.ServeHTTP(w, r)
	})
}
