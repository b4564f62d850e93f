package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateScan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want string
	}{
		{"time value", time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), "2026-03-09"},
		{"time with zone keeps calendar day", time.Date(2026, 3, 9, 23, 30, 0, 0, time.FixedZone("IST", 19800)), "2026-03-09"},
		{"plain string", "2026-11-30", "2026-11-30"},
		{"sqlite datetime text", "2026-11-30 00:00:00+00:00", "2026-11-30"},
		{"bytes", []byte("2027-01-01"), "2027-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDateScanRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, d.Scan("tomorrow"))
	assert.Error(t, d.Scan(42))
}

func TestDateValueAndJSON(t *testing.T) {
	d := NewDate(2026, time.October, 15)

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-10-15", v)

	b, err := json.Marshal(struct {
		When Date `json:"when"`
	}{d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"when":"2026-10-15"}`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-10-15"`), &back))
	assert.True(t, back.Equal(d.Time))

	assert.Error(t, json.Unmarshal([]byte(`"15/10/2026"`), &back))
}
