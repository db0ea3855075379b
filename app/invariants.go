package app

import (
	"sort"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// invariantRegistry collects module invariants and runs them after every
// block.
type invariantRegistry struct {
	routes map[string]sdk.Invariant
}

var _ sdk.InvariantRegistry = (*invariantRegistry)(nil)

func newInvariantRegistry() *invariantRegistry {
	return &invariantRegistry{routes: make(map[string]sdk.Invariant)}
}

// RegisterRoute implements sdk.InvariantRegistry.
func (r *invariantRegistry) RegisterRoute(moduleName, route string, invar sdk.Invariant) {
	r.routes[moduleName+"/"+route] = invar
}

// Routes returns the registered routes in order.
func (r *invariantRegistry) Routes() []string {
	routes := make([]string, 0, len(r.routes))
	for route := range r.routes {
		routes = append(routes, route)
	}
	sort.Strings(routes)
	return routes
}

func (r *invariantRegistry) assert(ctx sdk.Context) (string, bool) {
	for _, route := range r.Routes() {
		if msg, broken := r.routes[route](ctx); broken {
			return msg, true
		}
	}
	return "", false
}

// InvariantRoutes returns the routes of every registered invariant.
func (app *App) InvariantRoutes() []string {
	return app.invariants.Routes()
}
