package otel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

type season string

func (s season) String() string { return "season:" + string(s) }

func TestToAttribute(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  attribute.Value
	}{
		{name: "bool", value: true, want: attribute.BoolValue(true)},
		{name: "string", value: "Deluxe King Room", want: attribute.StringValue("Deluxe King Room")},
		{name: "int", value: 5625, want: attribute.IntValue(5625)},
		{name: "float", value: 1.25, want: attribute.Float64Value(1.25)},
		{name: "strings", value: []string{"King Bed", "City View"}, want: attribute.StringSliceValue([]string{"King Bed", "City View"})},
		{name: "date", value: time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC), want: attribute.StringValue("2024-11-01")},
		{name: "stringer", value: season("peak"), want: attribute.StringValue("season:peak")},
		{name: "other", value: struct{ N int }{N: 2}, want: attribute.StringValue("{2}")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := toAttribute("k", tt.value)

			assert.Equal(t, attribute.Key("k"), kv.Key)
			assert.Equal(t, tt.want, kv.Value)
		})
	}
}
