package usecase

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

var (
	ErrInvalidSignature       = errors.New("invalid payment signature")
	ErrSignatureSecretMissing = errors.New("payment signature secret not configured")
)

// SignatureVerifier checks that a confirmation claim was issued by the
// payment gateway. It is the only authentication step of the confirmation
// pipeline.
type SignatureVerifier struct {
	secret []byte
}

func NewSignatureVerifier(secret string) *SignatureVerifier {
	return &SignatureVerifier{secret: []byte(strings.TrimSpace(secret))}
}

// Sign returns the hex HMAC-SHA256 of "orderRef|paymentRef".
func (v *SignatureVerifier) Sign(orderRef, paymentRef string) (string, error) {
	if v == nil || len(v.secret) == 0 {
		return "", ErrSignatureSecretMissing
	}
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(orderRef + "|" + paymentRef))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

func (v *SignatureVerifier) Verify(orderRef, paymentRef, signature string) error {
	expected, err := v.Sign(orderRef, paymentRef)
	if err != nil {
		return err
	}
	if !hmac.Equal([]byte(strings.ToLower(strings.TrimSpace(signature))), []byte(expected)) {
		return ErrInvalidSignature
	}
	return nil
}
