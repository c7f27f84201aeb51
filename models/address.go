// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Address identifies a wallet on the messaging network.
//
// Values produced by [NewAddress] are canonical: hex wallet addresses are
// rendered in EIP-55 checksum form so that two spellings of the same wallet
// compare equal and map to the same key in session state.
type Address string

// NewAddress trims raw and canonicalizes it when it is a 20-byte hex address.
// Anything else is kept verbatim (after trimming) so that non-EVM identities
// still round-trip.
func NewAddress(raw string) Address {
	raw = strings.TrimSpace(raw)
	if common.IsHexAddress(raw) {
		return Address(common.HexToAddress(raw).Hex())
	}
	return Address(raw)
}

// String implements [fmt.Stringer].
func (a Address) String() string {
	return string(a)
}

// IsZero reports whether the address is empty.
func (a Address) IsZero() bool {
	return a == ""
}

// Equal compares two addresses by their canonical form.
func (a Address) Equal(other Address) bool {
	return NewAddress(string(a)) == NewAddress(string(other))
}

// Short returns an abbreviated form (0x1234…abcd) for display.
func (a Address) Short() string {
	s := string(a)
	if len(s) <= 12 {
		return s
	}
	return s[:6] + "…" + s[len(s)-4:]
}
