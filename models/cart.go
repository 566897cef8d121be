package models

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"time"
)

// CartItem is one line in a user's cart. Identity is the Fingerprint: two
// lines with the same fingerprint are the same purchase and merge quantities.
type CartItem struct {
	TemplateProductID string              `json:"template_product_id"`
	ProductName       string              `json:"product_name"`
	VendorID          string              `json:"vendor_id"`
	SelectedOptions   map[string][]string `json:"selected_options"` // group id -> option ids
	Quantity          int                 `json:"quantity"`
	UnitPrice         float64             `json:"unit_price"`
	Note              string              `json:"note"`
	Extras            []string            `json:"extras"`
	Fingerprint       string              `json:"fingerprint"`
	AddedAt           time.Time           `json:"added_at"`
}

// ComputeFingerprint derives the composite cart-line key from everything that
// makes two purchases "the same": template, options, note and extras. The
// encoding is canonical (sorted groups, option ids and extras) so map and
// slice ordering never produce distinct keys for equal selections.
func ComputeFingerprint(templateProductID string, selectedOptions map[string][]string, note string, extras []string) string {
	var b strings.Builder
	b.WriteString(templateProductID)
	b.WriteByte('|')

	groupIDs := make([]string, 0, len(selectedOptions))
	for gid := range selectedOptions {
		groupIDs = append(groupIDs, gid)
	}
	sort.Strings(groupIDs)
	for _, gid := range groupIDs {
		opts := append([]string(nil), selectedOptions[gid]...)
		sort.Strings(opts)
		b.WriteString(gid)
		b.WriteByte('=')
		b.WriteString(strings.Join(opts, ","))
		b.WriteByte(';')
	}

	b.WriteByte('|')
	b.WriteString(note)
	b.WriteByte('|')

	sortedExtras := append([]string(nil), extras...)
	sort.Strings(sortedExtras)
	b.WriteString(strings.Join(sortedExtras, ","))

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// LineTotal is the line contribution to the cart total.
func (ci CartItem) LineTotal() float64 {
	return ci.UnitPrice * float64(ci.Quantity)
}
