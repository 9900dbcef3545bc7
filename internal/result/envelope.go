package result

// Envelope is a pair of an opaque payload and a human-readable display
// projection. Envelopes are immutable once constructed: there is no setter,
// only the constructor and the read accessors: Payload and Display, which
// spec.md §4.2 calls for, plus the optional Kind tag.
//
// The kernel never inspects Payload's concrete type. A downstream plugin
// function that declared a dependency on the producing QID knows, by the
// deployment's own contract, what concrete type to expect and performs the
// type assertion itself. That reinterpretation is deliberately unchecked by
// this package — spec.md §4.2 calls it "by design" the plugin author's
// responsibility, not the kernel's.
type Envelope struct {
	payload any
	display string
	kind    string
}

// New constructs an envelope from an owned payload value and its display
// projection. kind is an optional, implementation-defined tag (spec.md §9
// leaves this an open point); pass "" when a producer has none to offer.
func New(payload any, display string, kind string) Envelope {
	return Envelope{payload: payload, display: display, kind: kind}
}

// Payload returns the opaque payload. Callers that know the producing
// plugin function's concrete output type assert it themselves; a wrong
// assertion panics exactly like any other failed Go type assertion — the
// kernel offers no protection here, by design.
func (e Envelope) Payload() any { return e.payload }

// Display returns the envelope's human-readable projection, usable for
// output and error messages without knowing the payload's kind.
func (e Envelope) Display() string { return e.display }

// Kind returns the producer-supplied payload-kind tag, or "" if the
// producer did not set one.
func (e Envelope) Kind() string { return e.kind }
