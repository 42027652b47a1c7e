package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindEmail(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "Plain address",
			text: "Contact: jane.doe@example.com for details",
			want: "jane.doe@example.com",
		},
		{
			name: "First of several",
			text: "jane@example.com or backup@example.org",
			want: "jane@example.com",
		},
		{
			name: "Mixed case",
			text: "Jane.Doe@Example.COM",
			want: "Jane.Doe@Example.COM",
		},
		{
			name: "Plus tag and digits",
			text: "reach me at jane+work42@mail.example.io",
			want: "jane+work42@mail.example.io",
		},
		{
			name: "No address",
			text: "no contact information here",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindEmail(tt.text))
		})
	}
}

func TestFindPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "Formatted US number",
			text: "Call (512) 555-1234 any time",
			want: "5125551234",
		},
		{
			name: "Dotted format",
			text: "512.555.1234",
			want: "5125551234",
		},
		{
			name: "Country code stripped",
			text: "+1 512 555 1234",
			want: "5125551234",
		},
		{
			name: "Bare digits",
			text: "phone 5125551234",
			want: "5125551234",
		},
		{
			name: "No phone",
			text: "no number here",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindPhone(tt.text))
		})
	}
}
