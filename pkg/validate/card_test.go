package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPayoutCard(t *testing.T) {
	tests := []struct {
		card string
		want bool
	}{
		{"4561261212345467", true},
		{"4561 2612 1234 5467", true},
		{"4561-2612-1234-5467", true},
		{"4561261212345464", false},
		{"79927398713", false},
		{"", false},
		{"abcdabcdabcdabcd", false},
	}

	for _, tt := range tests {
		t.Run(tt.card, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPayoutCard(tt.card))
		})
	}
}

func TestNormalizeCard(t *testing.T) {
	assert.Equal(t, "4561261212345467", NormalizeCard("4561 2612-1234 5467"))
}
