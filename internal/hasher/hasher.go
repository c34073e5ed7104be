package hasher

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used for stored passwords.
const DefaultCost = 12

// dummyPassword is hashed once per Hasher so that logins for unknown
// emails spend the same bcrypt time as logins with a wrong password.
const dummyPassword = "idea2context-timing-equalizer"

// Hasher hashes and verifies passwords with bcrypt.
type Hasher struct {
	cost      int
	dummyHash []byte
}

// New creates a Hasher with the given bcrypt cost.
func New(cost int) (*Hasher, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), cost)
	if err != nil {
		return nil, err
	}
	return &Hasher{cost: cost, dummyHash: dummy}, nil
}

// Hash returns the bcrypt hash of password.
func (h *Hasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password matches hash.
func (h *Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// VerifyDummy runs a full bcrypt comparison against a fixed hash and
// discards the result.
func (h *Hasher) VerifyDummy(password string) {
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(password))
}
