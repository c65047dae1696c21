package dom

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrInvalidPluginIdentifier indicates a malformed plugin FQCN or type.
	ErrInvalidPluginIdentifier = errors.New("invalid plugin identifier")

	// fqcnRegex matches fully qualified collection names with at least three
	// dot-separated segments.
	fqcnRegex = regexp.MustCompile(`^[A-Za-z0-9_]+\.[A-Za-z0-9_]+(?:\.[A-Za-z0-9_]+)+$`)

	// pluginTypeRegex matches plugin types such as "module", "lookup", or
	// "role". No fixed list is enforced.
	pluginTypeRegex = regexp.MustCompile(`^[a-z_]+$`)
)

// PluginIdentifier identifies a plugin by its fully qualified collection name
// and plugin type. The type can also be "module", "role", or "playbook".
type PluginIdentifier struct {
	FQCN string `json:"fqcn"`
	Type string `json:"type"`
}

// NewPluginIdentifier validates fqcn and typ and returns the corresponding
// [PluginIdentifier].
func NewPluginIdentifier(fqcn, typ string) (PluginIdentifier, error) {
	if !IsFQCN(fqcn) {
		return PluginIdentifier{}, fmt.Errorf("%w: %q is not a FQCN", ErrInvalidPluginIdentifier, fqcn)
	}

	if !IsPluginType(typ) {
		return PluginIdentifier{}, fmt.Errorf("%w: plugin type %q is not valid", ErrInvalidPluginIdentifier, typ)
	}

	return PluginIdentifier{FQCN: fqcn, Type: typ}, nil
}

// ParsePluginIdentifier parses the "FQCN#type" form, splitting on the first
// "#".
func ParsePluginIdentifier(s string) (PluginIdentifier, error) {
	fqcn, typ, ok := strings.Cut(s, "#")
	if !ok {
		return PluginIdentifier{}, fmt.Errorf("%w: %q is not of the form FQCN#type", ErrInvalidPluginIdentifier, s)
	}

	return NewPluginIdentifier(fqcn, typ)
}

// IsFQCN reports whether s is a fully qualified collection name, that is at
// least three dot-separated segments of letters, digits, and underscores.
func IsFQCN(s string) bool {
	return fqcnRegex.MatchString(s)
}

// IsPluginType reports whether s is a syntactically valid plugin type.
func IsPluginType(s string) bool {
	return pluginTypeRegex.MatchString(s)
}

// String returns the "FQCN#type" form.
func (p PluginIdentifier) String() string {
	return p.FQCN + "#" + p.Type
}

// Namespace returns the first segment of the FQCN.
func (p PluginIdentifier) Namespace() string {
	ns, _, _ := strings.Cut(p.FQCN, ".")

	return ns
}

// Collection returns the second segment of the FQCN.
func (p PluginIdentifier) Collection() string {
	_, rest, _ := strings.Cut(p.FQCN, ".")
	coll, _, _ := strings.Cut(rest, ".")

	return coll
}

// Name returns everything after the collection segment of the FQCN.
func (p PluginIdentifier) Name() string {
	_, rest, _ := strings.Cut(p.FQCN, ".")
	_, name, _ := strings.Cut(rest, ".")

	return name
}
