// Package composer provides functionality for assembling the textual form of a URL from its parts.
package composer

import (
	"io"

	"github.com/danilovkiri/dk_go_url_composer/internal/service/composer"
	serviceErrors "github.com/danilovkiri/dk_go_url_composer/internal/service/errors"
	"github.com/danilovkiri/dk_go_url_composer/internal/service/modelurl"
)

// Separator joins the protocol and resource parts in the rendered form.
const Separator = "://"

// Check interface implementation explicitly
var (
	_ composer.Processor = (*Composer)(nil)
)

// Composer struct defines data structure handling and provides support for adding new implementations.
type Composer struct {
	Writer io.Writer
}

// InitComposer initializes a Composer object and sets its attributes.
func InitComposer(w io.Writer) (*Composer, error) {
	if w == nil {
		return nil, &serviceErrors.ServiceFoundNilWriter{Msg: "nil writer was passed to service initializer"}
	}
	return &Composer{Writer: w}, nil
}

// Construct assembles a FullURL from its parts, storing both fields verbatim.
func (comp *Composer) Construct(protocol string, resource string) modelurl.FullURL {
	return modelurl.FullURL{
		Protocol: protocol,
		Resource: resource,
	}
}

// Render returns the textual form of a FullURL as protocol, separator and resource concatenated.
// Fields are never re-parsed, a separator occurring inside either field is kept verbatim.
func (comp *Composer) Render(full modelurl.FullURL) string {
	return full.Protocol + Separator + full.Resource
}

// Display writes the rendered FullURL and a trailing newline to the output writer.
func (comp *Composer) Display(full modelurl.FullURL) error {
	_, err := io.WriteString(comp.Writer, comp.Render(full)+"\n")
	if err != nil {
		return &serviceErrors.ServiceWriteError{Msg: err.Error()}
	}
	return nil
}
