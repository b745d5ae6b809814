package wizard

import (
	"net/url"
	"strings"
)

type Page string

const (
	PageLanding   Page = "landing"
	PageLogin     Page = "login"
	PageSignup    Page = "signup"
	PageDashboard Page = "dashboard"
	PageNotFound  Page = "not-found"
)

const (
	RouteLanding   = "/"
	RouteLogin     = "/login"
	RouteSignup    = "/signup"
	RouteDashboard = "/userDashboard"
)

// Route is a resolved client path. Step is set only for signup pages.
type Route struct {
	Page Page
	Step int
}

var signupChildren = map[string]int{
	PathHealthInfo:  2,
	PathGeneralInfo: 3,
	PathTerms:       4,
}

// ResolveRoute maps a client path to its page. The signup index is the
// personal information step; unknown paths resolve to the not-found page.
func ResolveRoute(path string) Route {
	if u, err := url.Parse(path); err == nil {
		path = u.Path
	}
	if path != RouteLanding {
		path = strings.TrimRight(path, "/")
	}

	switch path {
	case RouteLanding, "":
		return Route{Page: PageLanding}
	case RouteLogin:
		return Route{Page: PageLogin}
	case RouteDashboard:
		return Route{Page: PageDashboard}
	case RouteSignup:
		return Route{Page: PageSignup, Step: 1}
	}

	if child, ok := strings.CutPrefix(path, RouteSignup+"/"); ok {
		if step, ok := signupChildren[child]; ok {
			return Route{Page: PageSignup, Step: step}
		}
	}
	return Route{Page: PageNotFound}
}

// StepRoute returns the client path that shows the given signup step.
func StepRoute(step int) string {
	for child, n := range signupChildren {
		if n == step {
			return RouteSignup + "/" + child
		}
	}
	return RouteSignup
}

// LoginRoute is where the login form navigates. Credentials are not checked.
func LoginRoute() string {
	return RouteDashboard
}
