package gate

import (
	"net/http"
	"net/url"
)

// Middleware guards HTTP routes with the same evaluator the UI router
// uses. Allowed requests pass through; everything else is redirected with
// 303 See Other, login redirects carrying the intended destination in a
// "redirect" query parameter.
//
// Concurrent requests are independent navigations, so the middleware uses
// [Evaluator.Decide] and never reports supersession.
func Middleware(e *Evaluator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if e == nil {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			d := e.Decide(r.Context(), r.URL.Path)
			if d.Allowed() {
				next.ServeHTTP(w, r)
				return
			}

			target := d.Target
			if d.ReturnTo != "" {
				target += "?redirect=" + url.QueryEscape(d.ReturnTo)
			}
			http.Redirect(w, r, target, http.StatusSeeOther)
		})
	}
}
