package validate

import (
	"net/mail"
	"strings"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string {
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Helpers; each returns nil when the value passes.

func Required(field, value, msg string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: msg}
	}
	return nil
}

func Email(field, value string) *ErrField {
	if _, err := mail.ParseAddress(value); err != nil {
		return &ErrField{Field: field, Msg: "Valid email is required"}
	}
	return nil
}

func MinLen(field, value string, n int, msg string) *ErrField {
	if len(value) < n {
		return &ErrField{Field: field, Msg: msg}
	}
	return nil
}

func Positive(field string, v int64, msg string) *ErrField {
	if v <= 0 {
		return &ErrField{Field: field, Msg: msg}
	}
	return nil
}

// Collect drops nil entries and returns nil when nothing failed.
func Collect(checks ...*ErrField) Errs {
	var out Errs
	for _, c := range checks {
		if c != nil {
			out = append(out, *c)
		}
	}
	return out
}
