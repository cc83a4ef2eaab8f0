// Package secret generates random credentials for database accounts.
package secret

import (
	"crypto/rand"
	"math/big"
)

// PasswordLength is the length of generated passwords.
const PasswordLength = 32

const letters = "abcdefghijklmnopqrstuvwxyz"

// RandomPassword returns a random lowercase-alphabetic password of
// PasswordLength characters. It is used for per-site database credentials
// and for the database root password when the config requests one.
func RandomPassword() string {
	return randomString(PasswordLength)
}

// randomString returns a random string of n lowercase letters.
func randomString(n int) string {
	buf := make([]byte, n)
	max := big.NewInt(int64(len(letters)))
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken;
			// a guessable credential is worse than a crash here.
			panic("secret: failed to read random bytes: " + err.Error())
		}
		buf[i] = letters[idx.Int64()]
	}
	return string(buf)
}
