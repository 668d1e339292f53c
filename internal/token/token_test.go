package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewService("test-secret")

	tokenStr, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	userID, err := svc.Verify(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	tokenStr, err := NewService("secret-a").Issue(7)
	require.NoError(t, err)

	_, err = NewService("secret-b").Verify(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := NewService("test-secret")

	for _, tokenStr := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		_, err := svc.Verify(tokenStr)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestVerifyErrorIsUniform(t *testing.T) {
	svc := NewService("test-secret")

	_, malformedErr := svc.Verify("not-a-jwt")
	otherKey, err := NewService("other").Issue(1)
	require.NoError(t, err)
	_, badSigErr := svc.Verify(otherKey)

	// A caller cannot tell a format failure from a signature failure.
	assert.Equal(t, malformedErr, badSigErr)
}
