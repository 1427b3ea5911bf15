package dispatch

// Group registers routes under a shared path prefix.
type Group struct {
	parent Registrar
	prefix string
}

// Group creates a route group with the given prefix.
func (s *Server) Group(prefix string) *Group {
	return &Group{parent: s, prefix: prefix}
}

// Group creates a nested group whose prefix extends g's.
func (g *Group) Group(prefix string) *Group {
	return &Group{parent: g, prefix: prefix}
}

// addRoute implements Registrar for Group.
func (g *Group) addRoute(ri RouteInfo, build serviceBuilder) error {
	ri.Path = Path(g.prefix) + ri.Path
	return g.parent.addRoute(ri, build)
}
