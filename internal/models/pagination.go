package models

// Pagination bounds a list query to a window of results. Limit must be
// positive when supplied and Offset non-negative; zero values mean
// "not supplied" and fall back to the defaults below.
type Pagination struct {
	Limit  int `json:"limit" query:"limit" validate:"omitempty,gt=0"`
	Offset int `json:"offset" query:"offset" validate:"omitempty,gte=0"`
}

// Defaults applied when the caller leaves limit or offset unset.
const (
	DefaultLimit  = 10
	DefaultOffset = 0
)

// Window returns the effective limit and offset with defaults applied.
func (p Pagination) Window() (limit, offset int) {
	limit, offset = p.Limit, p.Offset
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = DefaultOffset
	}
	return limit, offset
}
