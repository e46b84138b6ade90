package ports

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page selects a window of a listing. Number is zero-based.
type Page struct {
	Number int
	Size   int
}

// NewPage clamps number to >= 0 and size to [1, MaxPageSize], using
// DefaultPageSize when size is not positive.
func NewPage(number, size int) Page {
	if number < 0 {
		number = 0
	}

	switch {
	case size <= 0:
		size = DefaultPageSize
	case size > MaxPageSize:
		size = MaxPageSize
	}

	return Page{Number: number, Size: size}
}

func (p Page) Offset() int {
	return p.Number * p.Limit()
}

func (p Page) Limit() int {
	if p.Size <= 0 {
		return DefaultPageSize
	}
	return p.Size
}

// TotalPages returns how many pages of this size cover total elements.
func (p Page) TotalPages(total int64) int {
	limit := int64(p.Limit())
	return int((total + limit - 1) / limit)
}
