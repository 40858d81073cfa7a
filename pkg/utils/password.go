package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt digest (cost 10). Each call salts
// freshly, so hashing the same plaintext twice yields different digests.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
