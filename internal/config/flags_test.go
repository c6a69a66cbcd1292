package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NetAddress.Set / String are the only parts of flag parsing with logic of
// their own; flag.Parse wiring is exercised indirectly by the server binary.

func TestNetAddress_Set_Valid(t *testing.T) {
	tests := []struct {
		input    string
		wantHost string
		wantPort int
	}{
		{"localhost:8765", "localhost", 8765},
		{"127.0.0.1:9000", "127.0.0.1", 9000},
		{"0.0.0.0:1", "0.0.0.0", 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var a NetAddress
			require.NoError(t, a.Set(tt.input))
			assert.Equal(t, tt.wantHost, a.Host)
			assert.Equal(t, tt.wantPort, a.Port)
			assert.Equal(t, tt.input, a.String())
		})
	}
}

func TestNetAddress_Set_Invalid(t *testing.T) {
	tests := []string{
		"no-port",
		"host:port:extra",
		"localhost:abc",
		"localhost:0",
		"localhost:-1",
		"not-an-ip:8080",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			var a NetAddress
			assert.Error(t, a.Set(input))
		})
	}
}

func TestNetAddress_String_Empty(t *testing.T) {
	var a NetAddress
	assert.Equal(t, "", a.String())
}
