package ports_test

import (
	"testing"

	"orderhub/internal/core/ports"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name               string
		number, size       int
		wantNumber, wantSz int
	}{
		{"defaults", 0, 0, 0, ports.DefaultPageSize},
		{"negative number", -3, 10, 0, 10},
		{"oversized", 2, 1000, 2, ports.MaxPageSize},
		{"as given", 4, 25, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ports.NewPage(tt.number, tt.size)

			assert.Equal(t, tt.wantNumber, p.Number)
			assert.Equal(t, tt.wantSz, p.Size)
		})
	}
}

func TestPage_OffsetAndTotalPages(t *testing.T) {
	p := ports.NewPage(2, 10)

	assert.Equal(t, 20, p.Offset())
	assert.Equal(t, 10, p.Limit())
	assert.Equal(t, 0, p.TotalPages(0))
	assert.Equal(t, 1, p.TotalPages(10))
	assert.Equal(t, 3, p.TotalPages(21))

	assert.Equal(t, ports.DefaultPageSize, ports.Page{}.Limit())
}
