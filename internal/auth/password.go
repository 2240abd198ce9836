package auth

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost matches the cost the rest of the system was seeded with.
const DefaultBcryptCost = 10

// HashPassword returns the bcrypt hash of plain using the given cost.
// The output embeds algorithm, cost and salt, so verification needs no
// side channel. A cost below bcrypt's minimum falls back to the default.
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = DefaultBcryptCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares a bcrypt hash and a plain password.
// Malformed hashes simply verify as false.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
