package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "bare ten digits",
			input: "1234567890",
			want:  "1234567890",
		},
		{
			name:  "dashes stripped",
			input: "123-456-78-90",
			want:  "1234567890",
		},
		{
			name:  "parentheses and spaces stripped",
			input: "(123) 456 7890",
			want:  "1234567890",
		},
		{
			name:  "leading plus stripped",
			input: "+1234567890",
			want:  "1234567890",
		},
		{
			name:    "too short",
			input:   "123456789",
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "too long",
			input:   "12345678901",
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "letters rejected",
			input:   "12345678ab",
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: ErrInvalidPhone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePhone(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:  "plain address",
			input: "alice@example.com",
		},
		{
			name:  "subdomain",
			input: "bob@mail.example.org",
		},
		{
			name:    "missing at sign",
			input:   "alice.example.com",
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "two at signs",
			input:   "alice@@example.com",
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "empty local part",
			input:   "@example.com",
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "domain without dot",
			input:   "alice@example",
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "domain ends with dot",
			input:   "alice@example.",
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "domain starts with dot",
			input:   "alice@.com",
			wantErr: ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateEmail(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr error
	}{
		{
			name:  "valid date",
			input: "1990.03.05",
			want:  time.Date(1990, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "leap day on leap year",
			input: "2024.02.29",
			want:  time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "leap day on non-leap year",
			input:   "2023.02.29",
			wantErr: ErrInvalidDate,
		},
		{
			name:    "month out of range",
			input:   "2024.13.01",
			wantErr: ErrInvalidDate,
		},
		{
			name:    "day out of range",
			input:   "2024.01.32",
			wantErr: ErrInvalidDate,
		},
		{
			name:    "wrong separator",
			input:   "2024-01-02",
			wantErr: ErrInvalidDate,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
