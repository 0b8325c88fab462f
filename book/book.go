// Package book holds the story registry behind the polybook browser.
// A story is a named, self-contained layout scene with markdown notes;
// the browser and the exporter both build scenes through it.
package book

import (
	"sort"

	"github.com/polykit/polykit"
	"github.com/polykit/polykit/errs"
	"github.com/polykit/polykit/theme"
)

// Story is one browsable scene.
type Story struct {
	// Name identifies the story. Unique within a registry.
	Name string
	// Group buckets related stories in the browser list.
	Group string
	// Notes is markdown shown in the notes overlay and copied to the
	// clipboard from the browser.
	Notes string
	// Build constructs a fresh container for the scene. The width is
	// the simulated viewport in layout units; most scenes ignore it
	// and let the caller's OnResize drive responsiveness, but a scene
	// may vary its structure by it.
	Build func(th *theme.Theme, width float64) *polykit.Flex
}

// Registry is an ordered collection of stories.
type Registry struct {
	stories []Story
	byName  map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Add registers a story. Names must be unique and non-empty, and the
// story must carry a Build function.
func (r *Registry) Add(s Story) error {
	if s.Name == "" {
		return errs.New(errs.ErrCodeInternal, "story has no name")
	}
	if s.Build == nil {
		return errs.New(errs.ErrCodeInternal, "story %q has no build function", s.Name)
	}
	if _, ok := r.byName[s.Name]; ok {
		return errs.New(errs.ErrCodeInternal, "duplicate story %q", s.Name)
	}
	r.byName[s.Name] = len(r.stories)
	r.stories = append(r.stories, s)
	return nil
}

// Get returns the story with the given name.
func (r *Registry) Get(name string) (Story, error) {
	i, ok := r.byName[name]
	if !ok {
		return Story{}, errs.New(errs.ErrCodeStoryNotFound, "no story named %q", name)
	}
	return r.stories[i], nil
}

// All returns the stories sorted by group, then by name within each
// group. Ungrouped stories sort first.
func (r *Registry) All() []Story {
	out := make([]Story, len(r.stories))
	copy(out, r.stories)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Group != out[j].Group {
			return out[i].Group < out[j].Group
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Names returns all story names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.stories))
	for i, s := range r.stories {
		out[i] = s.Name
	}
	return out
}

// Len returns the number of registered stories.
func (r *Registry) Len() int {
	return len(r.stories)
}
