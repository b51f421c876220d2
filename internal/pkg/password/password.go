package password

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12

	letters  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits   = "0123456789"
	specials = "!@#$%^&*"
)

// Hash hashes a console account password using bcrypt
func Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares a password with a hash
func Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Generate produces an 8-character directory account password:
// 2 specials, 4 letters, 2 digits, shuffled.
func Generate() string {
	out := make([]byte, 0, 8)
	for i := 0; i < 2; i++ {
		out = append(out, pick(specials))
	}
	for i := 0; i < 4; i++ {
		out = append(out, pick(letters))
	}
	for i := 0; i < 2; i++ {
		out = append(out, pick(digits))
	}

	for i := len(out) - 1; i > 0; i-- {
		j := randInt(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

func pick(set string) byte {
	return set[randInt(len(set))]
}

func randInt(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(err)
	}
	return int(v.Int64())
}
