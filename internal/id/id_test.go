package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRecordID(t *testing.T) {
	tests := []struct {
		prefix string
		seq    int
		want   string
	}{
		{PrefixExpense, 1, "EXP-00001"},
		{PrefixFuel, 42, "FUEL-00042"},
		{PrefixParking, 99999, "PARK-99999"},
		{PrefixExpense, 123456, "EXP-123456"},
	}
	for _, tt := range tests {
		got := FormatRecordID(tt.prefix, tt.seq)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseRecordID(t *testing.T) {
	prefix, seq, err := ParseRecordID("EXP-00042")
	require.NoError(t, err)
	assert.Equal(t, "EXP", prefix)
	assert.Equal(t, 42, seq)
}

func TestParseRecordID_RoundTrip(t *testing.T) {
	orig := FormatRecordID(PrefixParking, 7)
	prefix, seq, err := ParseRecordID(orig)
	require.NoError(t, err)
	assert.Equal(t, PrefixParking, prefix)
	assert.Equal(t, 7, seq)
}

func TestParseRecordID_Invalid(t *testing.T) {
	tests := []string{"", "EXP", "EXP-", "-00042", "EXP-abc"}
	for _, tt := range tests {
		_, _, err := ParseRecordID(tt)
		assert.Error(t, err, "input %q", tt)
	}
}
