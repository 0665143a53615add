package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCredential(t *testing.T) {
	cases := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"placeholder", "your_api_key_here", true},
		{"invalid marker", "invalid_key", true},
		{"too short", "sk-short", true},
		{"valid", "sk-0123456789abcdefghij", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCredential(tc.key)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrNotConfigured)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	netErr := &NetworkError{Err: assert.AnError}
	assert.Contains(t, netErr.Error(), "network error")
	assert.ErrorIs(t, netErr, assert.AnError)

	httpErr := &HTTPError{StatusCode: 429, Body: "rate limited"}
	assert.Contains(t, httpErr.Error(), "429")
	assert.Contains(t, httpErr.Error(), "rate limited")
}
