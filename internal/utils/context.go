// Package utils provides general-purpose helper utilities shared by the
// client and the development gateway: typed context keys, JWT issuing and
// parsing, HTTP response writing, the rate-limited HTTP client and ID
// generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-indie-chat/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AddressCtxKey is the key under which the authenticated wallet address of
// an installation is stored in the request context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AddressCtxKey, models.Address("0x..."))
var AddressCtxKey = contextKey("address")

// GetAddressFromContext retrieves the authenticated address from the context.
//
// Returns the address and an ok flag:
//   - ok == true : value is found, has the correct type and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetAddressFromContext(ctx context.Context) (models.Address, bool) {
	address, ok := ctx.Value(AddressCtxKey).(models.Address)
	if !ok || address.IsZero() {
		return "", false
	}
	return address, true
}

// EnvironmentCtxKey is the key under which the network environment requested
// by the caller is stored in the request context.
var EnvironmentCtxKey = contextKey("environment")

// GetEnvironmentFromContext retrieves the requested network environment.
func GetEnvironmentFromContext(ctx context.Context) (models.Environment, bool) {
	env, ok := ctx.Value(EnvironmentCtxKey).(models.Environment)
	return env, ok && env != ""
}
