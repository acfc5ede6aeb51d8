package facts

import (
	"fmt"
	"strings"

	"github.com/neurocrista/genemap/pkg/errors"
	"github.com/neurocrista/genemap/pkg/genes"
)

// Contribution is one source's immutable, namespace-owned view of one gene.
// Contributions are validated at construction: a payload owned by a
// different source never reaches the merge engine.
type Contribution struct {
	source   SourceID
	symbol   genes.Symbol
	present  bool
	nativeID string
	payload  Payload
}

// ContributionOption configures a Contribution during construction.
type ContributionOption func(*Contribution) error

// WithPresence sets the presence flag. Presence defaults to true; pass
// false for an explicit statement that the source has no data for the gene.
func WithPresence(present bool) ContributionOption {
	return func(c *Contribution) error {
		c.present = present
		return nil
	}
}

// WithNativeID sets the source's own identifier for the gene, e.g. a
// FaceBase dataset accession or an Ensembl gene ID.
func WithNativeID(id string) ContributionOption {
	return func(c *Contribution) error {
		c.nativeID = id
		return nil
	}
}

// WithPayload attaches the source's typed fact record. Omitting it yields a
// presence-only contribution.
func WithPayload(p Payload) ContributionOption {
	return func(c *Contribution) error {
		c.payload = p
		return nil
	}
}

// New constructs a validated contribution. The payload's owning source must
// match the contributing source; a mismatch is an ownership violation
// reported here, never at merge time.
func New(source SourceID, symbol genes.Symbol, opts ...ContributionOption) (Contribution, error) {
	c := Contribution{
		source:  source,
		symbol:  symbol,
		present: true,
	}

	if !source.IsValid() {
		return Contribution{}, &errors.ValidationError{
			Field:   "source",
			Value:   string(source),
			Message: "unknown source",
		}
	}
	if !symbol.IsValid() {
		return Contribution{}, &errors.ValidationError{
			Field:   "symbol",
			Value:   string(symbol),
			Message: "invalid gene symbol",
		}
	}

	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return Contribution{}, err
		}
	}

	if c.payload != nil {
		if !knownPayload(c.payload) {
			return Contribution{}, &errors.ValidationError{
				Field:   "payload",
				Value:   fmt.Sprintf("%T", c.payload),
				Message: "not a declared fact record type",
			}
		}
		if owner := c.payload.Source(); owner != source {
			return Contribution{}, &errors.OwnershipError{
				Source:    string(source),
				Symbol:    string(symbol),
				Attribute: namespaceLabel(c.payload, owner),
				Owner:     string(owner),
			}
		}
		if !c.present {
			return Contribution{}, &errors.ValidationError{
				Field:   "present",
				Value:   "false",
				Message: "absent contribution cannot carry a payload",
			}
		}
	}

	return c, nil
}

// Source returns the contributing source.
func (c Contribution) Source() SourceID {
	return c.source
}

// Symbol returns the gene the contribution describes.
func (c Contribution) Symbol() genes.Symbol {
	return c.symbol
}

// Present reports whether the source has data for the gene.
func (c Contribution) Present() bool {
	return c.present
}

// NativeID returns the source's own identifier for the gene. Empty string
// when the source has none, never null.
func (c Contribution) NativeID() string {
	return c.nativeID
}

// Payload returns the typed fact record, or nil for a presence-only
// contribution.
func (c Contribution) Payload() Payload {
	return c.payload
}

// Fields returns the contribution's attributes keyed by declared attribute
// name. Presence-only contributions return an empty map.
func (c Contribution) Fields() map[string]any {
	if c.payload == nil {
		return map[string]any{}
	}
	return Fields(c.payload)
}

// namespaceLabel names the attributes a payload carries for error messages.
// Presence-only records fall back to the record type name.
func namespaceLabel(p Payload, owner SourceID) string {
	attrs := DefaultSchema().BySource(owner)
	if len(attrs) == 0 {
		return fmt.Sprintf("%T", p)
	}
	names := make([]string, 0, len(attrs))
	for _, a := range attrs {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}
