package api

// Handlers bundles the HTTP handlers behind the shared dependency container.
type Handlers struct {
	deps *Dependencies
}

func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{deps: deps}
}
