package pagination

import (
	"math"
	"strconv"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Params is the page window requested by a list endpoint.
type Params struct {
	Page    int
	PerPage int
}

// ParseParams reads raw query values. Unparseable numbers are reported as
// validation errors, missing ones fall back to defaults.
func ParseParams(page, perPage string) (Params, error) {
	var errs validator.ValidationErrors
	p := Params{Page: 1, PerPage: DefaultPerPage}

	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "page", Message: "page must be a number"})
		} else {
			p.Page = n
		}
	}
	if perPage != "" {
		n, err := strconv.Atoi(perPage)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "per_page", Message: "per_page must be a number"})
		} else {
			p.PerPage = n
		}
	}

	if len(errs) > 0 {
		return p, errs
	}
	return p, p.Validate()
}

func (p *Params) Validate() error {
	var errs validator.ValidationErrors

	if p.Page == 0 {
		p.Page = 1
	}
	if p.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}

	if p.PerPage == 0 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "per_page",
			Message: "per_page must be a positive number",
		})
	}
	if p.PerPage > MaxPerPage {
		errs = append(errs, validator.ValidationError{
			Field:   "per_page",
			Message: "per_page must not exceed 100",
		})
	}

	// Offset must not overflow
	if len(errs) == 0 && p.Page > math.MaxInt/p.PerPage {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Page is one window of a list result.
type Page[T any] struct {
	Items   []T
	Total   int64
	Page    int
	PerPage int
}

func NewPage[T any](items []T, total int64, p Params) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total, Page: p.Page, PerPage: p.PerPage}
}

// LastPage is at least 1 so an empty list still has a first page.
func (pg Page[T]) LastPage() int {
	if pg.Total == 0 || pg.PerPage <= 0 {
		return 1
	}
	return int(math.Ceil(float64(pg.Total) / float64(pg.PerPage)))
}

// From is the 1-based index of the first item, or 0 for an empty page.
func (pg Page[T]) From() int {
	if len(pg.Items) == 0 {
		return 0
	}
	return (pg.Page-1)*pg.PerPage + 1
}

func (pg Page[T]) To() int {
	if len(pg.Items) == 0 {
		return 0
	}
	return pg.From() + len(pg.Items) - 1
}

// Map converts the items while keeping the window.
func Map[T, U any](pg Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(pg.Items))
	for _, item := range pg.Items {
		out = append(out, fn(item))
	}
	return Page[U]{Items: out, Total: pg.Total, Page: pg.Page, PerPage: pg.PerPage}
}
