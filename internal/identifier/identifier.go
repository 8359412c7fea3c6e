package identifier

import (
	"strings"

	"nem2/internal/crypto"
	"nem2/internal/errors"
)

const (
	// MaxSegmentLength is the longest accepted name segment.
	MaxSegmentLength = 64

	// MaxDepth is the deepest namespace hierarchy the network accepts.
	MaxDepth = 3
)

// Path is the identifier chain of a dotted name, root first.
type Path []uint64

// Leaf returns the identifier of the last segment.
func (p Path) Leaf() uint64 {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1]
}

// Parent returns the identifier of the second to last segment, if any.
func (p Path) Parent() (uint64, bool) {
	if len(p) < 2 {
		return 0, false
	}
	return p[len(p)-2], true
}

// Deriver computes identifiers with a given crypto provider.
type Deriver struct {
	provider crypto.Provider
}

// New returns a Deriver backed by p, or crypto.Default when p is nil.
func New(p crypto.Provider) *Deriver {
	if p == nil {
		p = crypto.Default
	}
	return &Deriver{provider: p}
}

var std = New(nil)

// Derive returns the identifier chain of name using the default provider.
func Derive(name string) (Path, error) { return std.Derive(name) }

// NamespaceID returns the leaf identifier of name using the default provider.
func NamespaceID(name string) (uint64, error) { return std.NamespaceID(name) }

// MosaicID returns the identifier of a "namespace.path:mosaic" or
// "namespace.path.mosaic" name using the default provider.
func MosaicID(name string) (uint64, error) { return std.MosaicID(name) }

// Derive splits name on '.' and hashes each segment with its parent's
// identifier. The root segment uses parent 0. Any number of segments is
// accepted; NamespaceID and MosaicID apply the network's depth limit.
func (d *Deriver) Derive(name string) (Path, error) {
	segments, err := Split(name)
	if err != nil {
		return nil, err
	}
	return d.chain(0, segments), nil
}

// NamespaceID returns the leaf identifier of name, which may be at most
// MaxDepth levels deep.
func (d *Deriver) NamespaceID(name string) (uint64, error) {
	p, err := d.namespace(name)
	if err != nil {
		return 0, err
	}
	return p.Leaf(), nil
}

func (d *Deriver) namespace(name string) (Path, error) {
	p, err := d.Derive(name)
	if err != nil {
		return nil, err
	}
	if err := ValidateNamespaceDepth(name, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ValidateNamespaceDepth rejects a namespace path deeper than MaxDepth.
func ValidateNamespaceDepth(name string, p Path) error {
	if len(p) > MaxDepth {
		return errors.Validation.WithFormat("namespace %q has %d levels, at most %d are allowed", name, len(p), MaxDepth)
	}
	return nil
}

// MosaicID derives the namespace part of name, then hashes the mosaic
// segment under its leaf. The mosaic may be separated by ':' or by the last '.'.
func (d *Deriver) MosaicID(name string) (uint64, error) {
	ns, mosaic, ok := strings.Cut(name, ":")
	if !ok {
		i := strings.LastIndexByte(name, '.')
		if i < 0 {
			return 0, errors.Validation.WithFormat("mosaic name %q has no namespace", name)
		}
		ns, mosaic = name[:i], name[i+1:]
	}
	if err := ValidateSegment(mosaic); err != nil {
		return 0, err
	}
	p, err := d.namespace(ns)
	if err != nil {
		return 0, err
	}
	return d.provider.IDHash(p.Leaf(), mosaic), nil
}

func (d *Deriver) chain(parent uint64, segments []string) Path {
	out := make(Path, len(segments))
	for i, s := range segments {
		parent = d.provider.IDHash(parent, s)
		out[i] = parent
	}
	return out
}

// Split validates name and returns its segments.
func Split(name string) ([]string, error) {
	if name == "" {
		return nil, errors.Validation.With("name is empty")
	}
	segments := strings.Split(name, ".")
	for _, s := range segments {
		if err := ValidateSegment(s); err != nil {
			return nil, err
		}
	}
	return segments, nil
}

// ValidateSegment checks one name part: 1 to 64 characters of [a-z0-9_-].
func ValidateSegment(s string) error {
	if s == "" {
		return errors.Validation.With("empty name segment")
	}
	if len(s) > MaxSegmentLength {
		return errors.Validation.WithFormat("segment %.16q... is longer than %d characters", s, MaxSegmentLength)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || '0' <= c && c <= '9' || c == '_' || c == '-') {
			return errors.Validation.WithFormat("segment %q contains invalid character %q", s, c)
		}
	}
	return nil
}
