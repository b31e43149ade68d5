package phone_test

import (
	"testing"

	"grandhotel/shared/phone"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		region string
		want   string
	}{
		{name: "empty", raw: "   ", region: "IN", want: ""},
		{name: "national indian mobile", raw: "9876543210", region: "IN", want: "+919876543210"},
		{name: "international with spaces", raw: "+91 98765 43210", region: "IN", want: "+919876543210"},
		{name: "international ignores region", raw: "+91 98765 43210", region: "US", want: "+919876543210"},
		{name: "empty region falls back to default", raw: "9876543210", region: "", want: "+919876543210"},
		{name: "unparseable kept as is", raw: "not-a-phone", region: "IN", want: "not-a-phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, phone.Normalize(tt.raw, tt.region))
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, phone.Valid("9876543210", "IN"))
	assert.True(t, phone.Valid("+91 98765 43210", "US"))
	assert.True(t, phone.Valid("9876543210", ""))
	assert.False(t, phone.Valid("12345", "IN"))
	assert.False(t, phone.Valid("", "IN"))
}
