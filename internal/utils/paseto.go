package utils

import (
	"encoding/hex"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
)

// PasetoMaker verarbeitet lokale PASETO-Operationen der Version 4 (symmetrisch).
type PasetoMaker struct {
	symmetricKey paseto.V4SymmetricKey
}

// NewPasetoMaker creates instance with existing key
func NewPasetoMaker(keyHex string) (*PasetoMaker, error) {
	key, err := paseto.V4SymmetricKeyFromHex(keyHex)
	if err != nil {
		return nil, fmt.Errorf("Invalid symmetric key: %w", err)
	}

	return &PasetoMaker{
		symmetricKey: key,
	}, nil
}

// GenerateSymmetricKey generiert einen neuen symmetrischen V4-Schlüssel. Wird verwendet, wenn kein hexKey vorhanden ist, nur einmal.
func GenerateSymmetricKey() string {
	key := paseto.NewV4SymmetricKey()
	return hex.EncodeToString(key.ExportBytes())
}

// TokenScope unterscheidet Access- und Refresh-Tokens.
const (
	ScopeAccess  = "access"
	ScopeRefresh = "refresh"
)

// CreateToken erstellt ein lokales V4 Token (encrypted)
func (m *PasetoMaker) CreateToken(userID, name, email, role, sessionID, scope string, duration time.Duration) (string, error) {
	token := paseto.NewToken()

	// Standard Claims festlegen
	token.SetIssuedAt(time.Now())
	token.SetNotBefore(time.Now())
	token.SetExpiration(time.Now().Add(duration))
	token.SetAudience("FlowOps")
	token.SetIssuer("FO-service")
	token.SetSubject(userID)

	// Benutzerdefiniert Claims festlegen
	token.SetString("name", name)
	token.SetString("email", email)
	token.SetString("role", role)
	token.SetString("scope", scope)
	token.SetString("jti", sessionID)

	// Encrypt mit V4 local (symmetric)
	encrypted := token.V4Encrypt(m.symmetricKey, nil)

	return encrypted, nil
}

type PayloadPaseto struct {
	UserID string
	Name   string
	Email  string
	Role   string
	Scope  string
	JTI    string
}

// VerifyToken decrypts und überprüft das lokale V4 Token.
func (m *PasetoMaker) VerifyToken(tokenString string) (*PayloadPaseto, error) {
	parser := paseto.NewParser()

	// Validierungsregeln hinzufügen
	parser.AddRule(paseto.NotExpired())
	parser.AddRule(paseto.ForAudience("FlowOps"))
	parser.AddRule(paseto.ValidAt(time.Now()))

	// Parse und decrypt mit symmetrischem Schlüssel
	parsedToken, err := parser.ParseV4Local(m.symmetricKey, tokenString, nil)
	if err != nil {
		return nil, fmt.Errorf("Token decryption/verification failed: %w", err)
	}

	claims := parsedToken.Claims()

	userID, _ := claims["sub"].(string)
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	scope, _ := claims["scope"].(string)
	jti, _ := claims["jti"].(string)

	payload := &PayloadPaseto{
		UserID: userID,
		Name:   name,
		Email:  email,
		Role:   role,
		Scope:  scope,
		JTI:    jti,
	}

	return payload, nil
}
