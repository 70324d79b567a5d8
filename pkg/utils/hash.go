package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes p with the given bcrypt cost. Costs outside bcrypt's
// accepted range fall back to bcrypt.DefaultCost.
func HashPassword(p string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(p), cost)
	return string(bytes), err
}

func CheckPassword(hash, pass string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass))
	return err == nil
}
