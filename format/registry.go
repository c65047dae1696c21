package format

import (
	"errors"
	"fmt"
	"slices"

	"go.jacobcolvin.com/docmarkup/dom"
)

// ErrUnknownFormat indicates a renderer name missing from a [Registry].
var ErrUnknownFormat = errors.New("unknown output format")

// Renderer renders a document into one output format.
type Renderer func(paragraphs []dom.Paragraph, opts ...Option) string

// Registry maps output format names to renderers.
type Registry map[string]Renderer

// Get returns the renderer registered under name.
func (r Registry) Get(name string) (Renderer, error) {
	render, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}

	return render, nil
}

// Names returns the registered format names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
