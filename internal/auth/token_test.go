package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setupTokenTest(t *testing.T) {
	t.Helper()

	originalSecret, originalTTL := secret, tokenTTL
	secret = []byte("unit-test-secret")
	tokenTTL = time.Hour

	t.Cleanup(func() {
		secret, tokenTTL = originalSecret, originalTTL
	})
}

func TestTokenRoundtrip(t *testing.T) {
	setupTokenTest(t)

	token, err := IssueToken("root")
	assert.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	subject, err := VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "root", subject)
}

func TestTokenRejectsTamperedSignature(t *testing.T) {
	setupTokenTest(t)

	token, err := IssueToken("root")
	assert.NoError(t, err)

	// Flip a single character of the signature segment.
	segments := strings.Split(token, ".")
	sig := []byte(segments[2])
	last := len(sig) - 1
	if sig[last] == 'A' {
		sig[last] = 'B'
	} else {
		sig[last] = 'A'
	}
	tampered := segments[0] + "." + segments[1] + "." + string(sig)

	_, err = VerifyToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsMalformedInput(t *testing.T) {
	setupTokenTest(t)

	for _, token := range []string{
		"",
		"justonesegment",
		"two.segments",
		"a.b.c.d",
		"not.base64url.!!!",
	} {
		_, err := VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q should be invalid", token)
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	setupTokenTest(t)

	token, err := IssueToken("root")
	assert.NoError(t, err)

	secret = []byte("a-different-secret")
	_, err = VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsExpired(t *testing.T) {
	setupTokenTest(t)
	tokenTTL = -time.Minute

	token, err := IssueToken("root")
	assert.NoError(t, err)

	_, err = VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
