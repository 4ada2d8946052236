// Package hash provides helpers for hashing and verifying secrets.
//
// Typical usage is keyed hashing of short-lived codes: store only the hash,
// then verify user input by hashing it again and comparing in constant time.
// Implementations live behind a small interface.
package hash
