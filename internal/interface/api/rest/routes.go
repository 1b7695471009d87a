package rest

const (
	RouteUsers = "/users"
	RouteUser  = RouteUsers + "/:id"

	// ops
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)
