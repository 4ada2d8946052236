package hash

// Hash abstracts one-way hashing of secrets.
//
// Implementations must never expose a way to reverse the hash. Verify must use
// a constant-time comparison so attackers cannot learn anything from timing.
type Hash interface {
	// Hash returns the one-way hash of the input string.
	Hash(str string) ([]byte, error)
	// Verify reports whether the plaintext string matches the given hash.
	Verify(hashed, str string) bool
}
