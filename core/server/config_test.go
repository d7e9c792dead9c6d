package server_test

import (
	"testing"

	"fixture-server/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
	}{
		{"Default", "5001", false},
		{"Low", "1", false},
		{"High", "65535", false},
		{"Zero", "0", true},
		{"TooHigh", "65536", true},
		{"NotNumber", "http", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := server.Config{Port: tt.port}.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Address(t *testing.T) {
	assert.Equal(t, "127.0.0.1:5001", server.Config{Host: "127.0.0.1", Port: "5001"}.Address())
	assert.Equal(t, ":8080", server.Config{Port: "8080"}.Address())
	assert.Equal(t, "[::1]:5001", server.Config{Host: "::1", Port: "5001"}.Address())
}
