package owner

// Slot is a provider-defined labeled owner field (e.g. "owner1") that may or
// may not carry a named individual or entity. Slots with an empty name are
// skipped during ingestion, not treated as errors.
type Slot struct {
	FullName string
}

// Detail is the provider's ownership record for one property: a single
// shared mailing address plus the set of owner slots found on the record.
type Detail struct {
	MailingAddress string
	Slots          []Slot
}

// NamedSlots returns the slots that carry a non-empty name after
// normalization, preserving provider order.
func (d Detail) NamedSlots() []Slot {
	named := make([]Slot, 0, len(d.Slots))
	for _, s := range d.Slots {
		if NormalizeName(s.FullName) != "" {
			named = append(named, s)
		}
	}
	return named
}
