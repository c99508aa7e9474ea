package size

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0"},
		{"below unit threshold", 1023, "1023"},
		{"exactly one KiB", 1024, "1.0K"},
		{"five KiB", 5120, "5.0K"},
		{"two KiB", 2048, "2.0K"},
		{"three KiB", 3072, "3.0K"},
		{"one MiB", 1 << 20, "1.0M"},
		{"one byte under a GiB stays MiB", 1<<30 - 1, "1024.0M"},
		{"exactly one GiB", 1 << 30, "1.0G"},
		{"fractional GiB", 1<<30 + 1<<29, "1.5G"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSize(tt.bytes))
		})
	}
}
