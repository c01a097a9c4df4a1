package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	a, b string
}

func TestRules_FirstFailureWins(t *testing.T) {
	rules := Rules[pair]{
		{Name: "a", Message: "a is missing", Check: func(p pair) bool { return NotBlank(p.a) }},
		{Name: "b", Message: "b is too short", Check: func(p pair) bool { return MinLength(3)(p.b) }},
	}

	tests := []struct {
		name    string
		in      pair
		wantMsg string
	}{
		{"all valid", pair{"x", "xyz"}, ""},
		{"both invalid reports first", pair{"", "x"}, "a is missing"},
		{"second invalid", pair{"x", "xy"}, "b is too short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rules.Validate(tt.in)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *Error
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantMsg, vErr.Message)
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestNotBlank(t *testing.T) {
	assert.True(t, NotBlank("A"))
	assert.False(t, NotBlank(""))
	assert.False(t, NotBlank("   \t"))
}

func TestMinLength(t *testing.T) {
	min3 := MinLength(3)
	assert.False(t, min3("hi"))
	assert.True(t, min3("hey"))
	assert.True(t, min3("ééé"), "length counts characters, not bytes")
	assert.False(t, MinLength(5)("été"))
	assert.False(t, min3("😀😀"), "an astral symbol counts once")
	assert.True(t, min3("😀😀😀"))
}

func TestEmail(t *testing.T) {
	valid := []string{"a@x.com", "john.doe+tag@example.co.uk"}
	invalid := []string{"", "plainaddress", "@x.com", "a@", "a b@x.com"}

	for _, s := range valid {
		assert.True(t, Email(s), s)
	}
	for _, s := range invalid {
		assert.False(t, Email(s), s)
	}
}
