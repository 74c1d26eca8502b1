package od

// Registry holds the live containers instantiated by discovery, one per
// exposed OD index. It is created once per session and may be rebuilt by
// re-running discovery.
type Registry struct {
	containers map[uint16]*Container
	order      []uint16
}

func NewRegistry() *Registry {
	return &Registry{containers: map[uint16]*Container{}}
}

// Put registers a container under index, replacing any previous instance.
func (r *Registry) Put(index uint16, c *Container) {
	if _, exists := r.containers[index]; !exists {
		r.order = append(r.order, index)
	}
	r.containers[index] = c
}

// Get returns the container registered under index, if any.
func (r *Registry) Get(index uint16) (*Container, bool) {
	c, ok := r.containers[index]
	return c, ok
}

// Indices returns the registered indices in registration order.
func (r *Registry) Indices() []uint16 {
	return append([]uint16(nil), r.order...)
}

// Len returns the number of registered containers.
func (r *Registry) Len() int {
	return len(r.containers)
}
