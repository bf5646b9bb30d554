package utils

import "golang.org/x/crypto/bcrypt"

// GenerateHash erzeugt einen bcrypt-Hash aus dem Klartext-Passwort.
func GenerateHash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyHash vergleicht den gespeicherten Hash mit dem Klartext-Passwort.
func VerifyHash(hash, password string) (bool, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return false, err
	}
	return true, nil
}
