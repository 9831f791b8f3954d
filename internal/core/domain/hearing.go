package domain

import "strings"

// Hearing is one legal-hearing entry in the table.
//
// ID is a stable identifier assigned when the record enters the store.
// Only the four display fields take part in search and validation.
type Hearing struct {
	// ID uniquely identifies the record for its whole lifetime.
	ID string `json:"id,omitempty"`

	// ProcessNumber is the court process number, e.g. "0001234-56.2024.8.26.0100".
	ProcessNumber string `json:"processNumber" validate:"required"`

	// Date is the hearing date. Expected shape YYYY-MM-DD, checked on save only.
	Date string `json:"date" validate:"required,isodate"`

	// Court is the court or tribunal, e.g. "TJSP".
	Court string `json:"court" validate:"required"`

	// Correspondent is the lawyer or agent attending the hearing.
	Correspondent string `json:"correspondent" validate:"required"`
}

// Field identifies one of the editable columns of a Hearing.
type Field string

// Editable fields, in display order.
const (
	FieldProcessNumber Field = "processNumber"
	FieldDate          Field = "date"
	FieldCourt         Field = "court"
	FieldCorrespondent Field = "correspondent"
)

// Fields lists every editable field in display order.
func Fields() []Field {
	return []Field{FieldProcessNumber, FieldDate, FieldCourt, FieldCorrespondent}
}

// Label returns the fixed column header shown to users.
func (f Field) Label() string {
	switch f {
	case FieldProcessNumber:
		return "Número do Processo"
	case FieldDate:
		return "Data"
	case FieldCourt:
		return "Tribunal"
	case FieldCorrespondent:
		return "Correspondente"
	default:
		return string(f)
	}
}

// Values returns the four display values in column order.
func (h Hearing) Values() []string {
	return []string{h.ProcessNumber, h.Date, h.Court, h.Correspondent}
}

// Value returns the value of a single field.
func (h Hearing) Value(f Field) string {
	switch f {
	case FieldProcessNumber:
		return h.ProcessNumber
	case FieldDate:
		return h.Date
	case FieldCourt:
		return h.Court
	case FieldCorrespondent:
		return h.Correspondent
	default:
		return ""
	}
}

// With returns a copy of h with one field replaced.
func (h Hearing) With(f Field, value string) Hearing {
	switch f {
	case FieldProcessNumber:
		h.ProcessNumber = value
	case FieldDate:
		h.Date = value
	case FieldCourt:
		h.Court = value
	case FieldCorrespondent:
		h.Correspondent = value
	}
	return h
}

// Matches reports whether any display field contains term, ignoring case.
// An empty term matches every record. The ID is never searched.
func (h Hearing) Matches(term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, v := range h.Values() {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// SameFields reports whether two records carry identical display values.
func (h Hearing) SameFields(other Hearing) bool {
	return h.ProcessNumber == other.ProcessNumber &&
		h.Date == other.Date &&
		h.Court == other.Court &&
		h.Correspondent == other.Correspondent
}
