package security

import "strings"

// docsPrefix is served by gin-swagger, whose index page needs inline script and style.
const docsPrefix = "/swagger/"

const apiPolicy = "default-src 'none'; frame-ancestors 'none'; base-uri 'none'; form-action 'none'"

var docsPolicy = strings.Join([]string{
	"default-src 'self'",
	"script-src 'self' 'unsafe-inline'",
	"style-src 'self' 'unsafe-inline'",
	"img-src 'self' data:",
	"connect-src 'self'",
	"frame-ancestors 'none'",
	"base-uri 'self'",
	"form-action 'self'",
}, "; ")

// contentSecurityPolicy returns the policy for a request path. JSON endpoints
// never render markup so they get a deny-all policy.
func contentSecurityPolicy(path string) string {
	if strings.HasPrefix(path, docsPrefix) {
		return docsPolicy
	}
	return apiPolicy
}
