package handler

import (
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/tripmate/internal/domain"
)

// fromDate formats an optional request date; nil becomes "" so form
// validation reports the field as missing.
func fromDate(d *openapi_types.Date) string {
	if d == nil {
		return ""
	}
	return domain.FormatDate(d.Time)
}

// toDate converts a stored yyyy-MM-dd string for a response. Stored dates
// were validated on the way in.
func toDate(s string) openapi_types.Date {
	t, _ := domain.ParseDate(s)
	return openapi_types.Date{Time: t}
}

// valueOr returns *p, or def when p is nil.
func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
