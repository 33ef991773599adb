package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type address struct {
	Zip string `json:"zip" validate:"required,max=5"`
}

type signup struct {
	Email    string  `json:"email" validate:"required,email"`
	Quantity *int    `json:"quantity" validate:"omitempty,min=0"`
	Internal string  `json:"-" validate:"omitempty,len=2"`
	Address  address `json:"address"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()
	negative := -1

	tests := []struct {
		name    string
		in      signup
		wantErr string
	}{
		{
			name: "valid",
			in:   signup{Email: "ada@example.com", Address: address{Zip: "10001"}},
		},
		{
			name:    "reports json names",
			in:      signup{Email: "nope", Address: address{Zip: "10001"}},
			wantErr: "email: email",
		},
		{
			name:    "joins every failure with nested paths",
			in:      signup{Quantity: &negative},
			wantErr: "email: required; quantity: min; address.zip: required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.in)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}
