// Package composer provides interfaces for types to be in compliance with.
package composer

import "github.com/danilovkiri/dk_go_url_composer/internal/service/modelurl"

// Processor defines a set of methods for types implementing Processor.
type Processor interface {
	Construct(protocol string, resource string) modelurl.FullURL
	Render(full modelurl.FullURL) string
	Display(full modelurl.FullURL) error
}
