package responsive

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/polykit/polykit/breakpoint"
)

// Resolver tracks the current viewport width and resolves named
// responsive properties against it. Resolution results are cached per
// property; the cache survives width changes within the same width class
// and is dropped when the class changes, when the property is rewritten,
// or when InvalidateAll is called.
//
// A Resolver is safe for concurrent use.
type Resolver struct {
	mu     sync.Mutex
	width  float64
	bp     breakpoint.Breakpoint
	gen    uint64
	props  map[string]*slot
	warned map[string]bool
	logger *log.Logger

	hits, misses uint64
}

// slot holds one property's value and its cached resolution.
type slot struct {
	value any // Value[T] for some T

	gen uint64 // bumped on every Set

	cached       bool
	cache        any
	cacheGen     uint64 // Resolver.gen at cache time
	cacheSlotGen uint64 // slot.gen at cache time
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithWidth sets the initial viewport width in layout units.
func WithWidth(w float64) Option {
	return func(r *Resolver) {
		r.width = w
		r.bp = breakpoint.ForWidth(w)
	}
}

// WithLogger sets the logger used to report property type mismatches.
func WithLogger(logger *log.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New creates a Resolver. Without options the width is zero, which
// classifies as the Base width class.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		props:  make(map[string]*slot),
		warned: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetWidth updates the viewport width. Cached resolutions are kept when
// the width stays inside the current width class and invalidated when
// the class changes.
func (r *Resolver) SetWidth(w float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.width = w
	if bp := breakpoint.ForWidth(w); bp != r.bp {
		r.bp = bp
		r.gen++
	}
}

// SetLogger replaces the logger used to report property type
// mismatches.
func (r *Resolver) SetLogger(logger *log.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// Width returns the current viewport width in layout units.
func (r *Resolver) Width() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width
}

// Breakpoint returns the width class of the current viewport width.
func (r *Resolver) Breakpoint() breakpoint.Breakpoint {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bp
}

// InvalidateAll drops every cached resolution without touching the
// stored values.
func (r *Resolver) InvalidateAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
}

// IsSet reports whether a property has been stored, regardless of
// whether it resolves at the current width class.
func (r *Resolver) IsSet(prop string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.props[prop]
	return ok && s.value != nil
}

// Stats returns the running cache hit and miss counts.
func (r *Resolver) Stats() (hits, misses uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hits, r.misses
}

// Set stores a responsive value under the given property name, replacing
// any previous value and invalidating its cached resolution.
func Set[T any](r *Resolver, prop string, v Value[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.props[prop]
	if !ok {
		s = &slot{}
		r.props[prop] = s
	}
	s.value = v
	s.gen++
	s.cached = false
}

// Get resolves a property at the current width class. Absent or unset
// properties resolve to def, as does a property stored with a different
// value type. Resolution never fails.
func Get[T any](r *Resolver, prop string, def T) T {
	if out, ok := Lookup[T](r, prop); ok {
		return out
	}
	return def
}

// Lookup resolves a property at the current width class and reports
// whether any stored entry applied. Callers that need to distinguish "no
// configuration" from "configured to the zero value" use this instead of
// Get.
func Lookup[T any](r *Resolver, prop string) (T, bool) {
	var zero T

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.props[prop]
	if !ok {
		return zero, false
	}

	v, ok := s.value.(Value[T])
	if !ok {
		r.warnMismatch(prop, s.value)
		return zero, false
	}

	if s.cached && s.cacheGen == r.gen && s.cacheSlotGen == s.gen {
		r.hits++
		return s.cache.(T), true
	}

	out, hit := v.at(r.bp)
	if !hit {
		// Nothing defined at any class: report absence without caching,
		// since the caller's fallback varies per call site.
		return zero, false
	}

	r.misses++
	s.cached = true
	s.cache = out
	s.cacheGen = r.gen
	s.cacheSlotGen = s.gen
	return out, true
}

// LookupAt resolves a property at an explicit width class instead of the
// resolver's current one. Probe reads bypass the cache entirely and
// leave the resolver's width untouched, so they are safe inside
// read-only measurement paths.
func LookupAt[T any](r *Resolver, prop string, bp breakpoint.Breakpoint) (T, bool) {
	var zero T

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.props[prop]
	if !ok {
		return zero, false
	}
	v, ok := s.value.(Value[T])
	if !ok {
		r.warnMismatch(prop, s.value)
		return zero, false
	}
	return v.at(bp)
}

// GetAt is Get at an explicit width class, with LookupAt's probe
// semantics.
func GetAt[T any](r *Resolver, prop string, bp breakpoint.Breakpoint, def T) T {
	if out, ok := LookupAt[T](r, prop, bp); ok {
		return out
	}
	return def
}

// warnMismatch logs a stored-type mismatch once per property.
// Callers hold r.mu.
func (r *Resolver) warnMismatch(prop string, stored any) {
	if r.logger == nil || r.warned[prop] {
		return
	}
	r.warned[prop] = true
	r.logger.Warn("responsive property type mismatch",
		"property", prop,
		"stored", stored)
}
