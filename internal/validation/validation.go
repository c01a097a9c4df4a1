// Package validation evaluates ordered lists of named predicate rules.
//
// Rules run in declaration order and evaluation stops at the first failing
// rule, whose fixed message becomes the user-facing error text.
package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Error reports the first rule a value failed.
type Error struct {
	Rule    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Rule is a single named predicate with the message reported when it fails.
type Rule[T any] struct {
	Name    string
	Message string
	Check   func(v T) bool
}

// Rules is an ordered rule list.
type Rules[T any] []Rule[T]

// Validate returns an *Error for the first failing rule, or nil.
func (rs Rules[T]) Validate(v T) error {
	for _, r := range rs {
		if !r.Check(v) {
			return &Error{Rule: r.Name, Message: r.Message}
		}
	}
	return nil
}

// NotBlank reports whether s has non-whitespace content.
func NotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// MinLength returns a predicate requiring at least n characters, counted as
// Unicode code points.
func MinLength(n int) func(string) bool {
	return func(s string) bool {
		return utf8.RuneCountInString(s) >= n
	}
}

var validate = validator.New()

// Email reports whether s is a syntactically valid email address.
func Email(s string) bool {
	return validate.Var(s, "required,email") == nil
}
