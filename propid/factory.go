package propid

import (
	"strings"

	"github.com/google/uuid"
)

// FallbackSentinel is the fixed ID returned by Factory.Create's second
// fallback tier.
const FallbackSentinel = "system_fallback_proposition"

// Factory produces IDs from arbitrary strings with a three-stage fallback:
// accept the input if it validates, else return FallbackSentinel, else
// (FallbackSentinel itself somehow failing to validate, which cannot
// happen for its fixed text but is handled for defensiveness) derive one
// from a fresh UUID. Factory holds no mutable state and is safe for
// concurrent use by any number of goroutines.
type Factory struct{}

// NewFactory constructs a Factory. There is nothing to configure; the
// constructor exists so call sites read like the rest of the corpus's
// `New*` constructors and so a future configurable variant is an additive
// change.
func NewFactory() *Factory { return &Factory{} }

// Create implements the three-stage fallback described on Factory.
func (f *Factory) Create(s string) ID {
	if id, err := New(s); err == nil {
		return id
	}
	if id, err := New(FallbackSentinel); err == nil {
		return id
	}
	return f.uuidID()
}

// CreateUnique deterministically derives an ID of the form "prop_<hash>"
// from seed using a version-5 (SHA-1 namespaced) UUID, so the same seed
// always yields the same ID. Uniqueness is only guaranteed across
// distinct seeds: calling CreateUnique twice with the same seed returns
// equal IDs by design; it is the caller's responsibility to supply
// distinct seeds when distinct identities are required. The empty
// string, arbitrary Unicode, and multi-kilobyte seeds are all valid
// inputs.
func (f *Factory) CreateUnique(seed string) ID {
	sum := uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed))
	raw := "prop_" + strings.ReplaceAll(sum.String(), "-", "")
	id, err := New(raw)
	if err != nil {
		// sum.String() only emits hex digits and hyphens, both of which
		// are stripped or valid, so this is unreachable for any seed.
		return f.uuidID()
	}
	return id
}

func (f *Factory) uuidID() ID {
	raw := "prop_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	id, err := New(raw)
	if err != nil {
		panic(err)
	}
	return id
}
