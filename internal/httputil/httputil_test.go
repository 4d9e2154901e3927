package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStatusCode(t *testing.T) {
	tests := []struct {
		code int
		want bool
	}{
		{99, false},
		{100, true},
		{200, true},
		{299, true},
		{599, true},
		{600, false},
		{0, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidateStatusCode(tt.code), "code %d", tt.code)
	}
}

func TestIsStandardStatusCode(t *testing.T) {
	assert.True(t, IsStandardStatusCode(200))
	assert.True(t, IsStandardStatusCode(418))
	assert.False(t, IsStandardStatusCode(299))
	assert.False(t, IsStandardStatusCode(420))
}

func TestIsSuccess(t *testing.T) {
	assert.True(t, IsSuccess(200))
	assert.True(t, IsSuccess(204))
	assert.False(t, IsSuccess(199))
	assert.False(t, IsSuccess(300))
}

func TestStandardHTTPStatusCodesCompleteness(t *testing.T) {
	for code := range StandardHTTPStatusCodes {
		assert.True(t, ValidateStatusCode(code), "standard code %d must be valid", code)
	}
}
