package core

// RenderFlag is the per-render active value. It is lazy: the resolver only
// runs when something actually asks (the first directive hit), and the result
// is memoized for the remainder of that render. That single memoized value is
// also what partitions the render cache, so computing it twice -- or getting
// two different answers inside one render -- would corrupt cache correctness.
type RenderFlag struct {
	resolve  func() bool // invoked at most once; nil means "always inactive"
	resolved bool        // has resolve run already?
	value    bool        // memoized answer (defaults to false = inactive)
}

// NewRenderFlag wraps a resolver (usually a closure over the viewer's stored
// toggle state and the time gate). Pass nil for a flag that is always off.
func NewRenderFlag(resolve func() bool) *RenderFlag {
	return &RenderFlag{resolve: resolve}
}

// Value returns the active flag, resolving and memoizing on first call.
// Renders are request-scoped and single-threaded, so no locking here.
func (f *RenderFlag) Value() bool {
	if !f.resolved {
		f.resolved = true // mark first so a panicking resolver can't re-run
		if f.resolve != nil {
			f.value = f.resolve()
		}
	}
	return f.value
}

// Resolved reports whether the value has been computed yet. The render
// service checks this to decide which cache partition a render belongs to.
func (f *RenderFlag) Resolved() bool { return f.resolved }
