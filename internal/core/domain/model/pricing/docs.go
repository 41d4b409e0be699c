// Package pricing contains the value objects that configure delivery fees:
// distance tiers and the store-wide delivery settings. The settings are
// loaded from configuration and passed to the fee calculator; they carry no
// identity and are compared by value.
package pricing
