package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/wordmunge/pkg/policy"
)

func TestPolicy_Matches(t *testing.T) {
	tests := []struct {
		name     string
		policy   policy.Policy
		input    string
		expected bool
	}{
		{"zero policy accepts anything", policy.Policy{}, "x", true},
		{"zero policy accepts empty string", policy.Policy{}, "", true},
		{"digit and min length rejects short word without digit", policy.Policy{RequireDigit: true, MinLen: policy.Int(6)}, "abcde", false},
		{"digit and min length accepts long word with digit", policy.Policy{RequireDigit: true, MinLen: policy.Int(6)}, "abcdef1", true},
		{"min length is inclusive", policy.Policy{MinLen: policy.Int(3)}, "abc", true},
		{"below min length", policy.Policy{MinLen: policy.Int(3)}, "ab", false},
		{"max length is inclusive", policy.Policy{MaxLen: policy.Int(3)}, "abc", true},
		{"above max length", policy.Policy{MaxLen: policy.Int(3)}, "abcd", false},
		{"max length applies even when classes are satisfied early", policy.Policy{MaxLen: policy.Int(4), RequireDigit: true}, "1abcdef", false},
		{"min length applies with no requirements", policy.Policy{MinLen: policy.Int(8)}, "short", false},
		{"length counts characters not bytes", policy.Policy{MaxLen: policy.Int(4)}, "äöüß", true},
		{"inverted bounds reject everything", policy.Policy{MinLen: policy.Int(5), MaxLen: policy.Int(3)}, "abcd", false},
		{"requires upper", policy.Policy{RequireUpper: true}, "password", false},
		{"has upper", policy.Policy{RequireUpper: true}, "passWord", true},
		{"requires lower", policy.Policy{RequireLower: true}, "PASSWORD", false},
		{"has lower", policy.Policy{RequireLower: true}, "PASSWORd", true},
		{"requires digit", policy.Policy{RequireDigit: true}, "password", false},
		{"requires special", policy.Policy{RequireSpecial: true}, "password1", false},
		{"punctuation is special", policy.Policy{RequireSpecial: true}, "pass!word", true},
		{"space is special", policy.Policy{RequireSpecial: true}, "pass word", true},
		{"non-ascii letters are not special", policy.Policy{RequireSpecial: true}, "pässword", false},
		{"all classes", policy.Policy{RequireUpper: true, RequireLower: true, RequireDigit: true, RequireSpecial: true}, "Pa$$w0rd", true},
		{"all classes missing special", policy.Policy{RequireUpper: true, RequireLower: true, RequireDigit: true, RequireSpecial: true}, "Passw0rd", false},
		{"charset restricts special", policy.Policy{RequireSpecial: true, SpecialCharset: policy.Charset("!@")}, "pass$word", false},
		{"charset member is special", policy.Policy{RequireSpecial: true, SpecialCharset: policy.Charset("!@")}, "pass@word", true},
		{"empty charset never matches special", policy.Policy{RequireSpecial: true, SpecialCharset: policy.Charset("")}, "pass!", false},
		{"empty string fails requirements", policy.Policy{RequireLower: true}, "", false},
		{
			name:     "upper character is classified as upper before special",
			policy:   policy.Policy{RequireSpecial: true, SpecialCharset: policy.Charset("A")},
			input:    "A",
			expected: false,
		},
		{
			name:     "repeated upper character falls through to special once upper is set",
			policy:   policy.Policy{RequireUpper: true, RequireSpecial: true, SpecialCharset: policy.Charset("A")},
			input:    "AA",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.policy.Matches(tt.input))
		})
	}
}

func TestPolicy_MatchesIsDeterministic(t *testing.T) {
	p := policy.Policy{MinLen: policy.Int(4), RequireUpper: true, RequireDigit: true}
	inputs := []string{"", "Abc1", "abc1", "ABCD", "Zz9!", "password"}
	for _, in := range inputs {
		first := p.Matches(in)
		for range 3 {
			assert.Equal(t, first, p.Matches(in), in)
		}
	}
}

func TestPolicy_IsZero(t *testing.T) {
	assert.True(t, policy.Policy{}.IsZero())
	assert.False(t, policy.Policy{MinLen: policy.Int(0)}.IsZero())
	assert.False(t, policy.Policy{RequireSpecial: true}.IsZero())
}

func TestMerge(t *testing.T) {
	base := policy.Policy{
		MinLen:       policy.Int(8),
		MaxLen:       policy.Int(128),
		RequireUpper: true,
	}

	t.Run("empty override keeps base", func(t *testing.T) {
		got := policy.Merge(base, policy.Policy{})
		assert.Equal(t, 8, *got.MinLen)
		assert.Equal(t, 128, *got.MaxLen)
		assert.True(t, got.RequireUpper)
		assert.Nil(t, got.SpecialCharset)
	})

	t.Run("override wins for bounds and charset", func(t *testing.T) {
		got := policy.Merge(base, policy.Policy{
			MinLen:         policy.Int(6),
			SpecialCharset: policy.Charset("!"),
			RequireDigit:   true,
		})
		assert.Equal(t, 6, *got.MinLen)
		assert.Equal(t, 128, *got.MaxLen)
		assert.Equal(t, "!", *got.SpecialCharset)
		assert.True(t, got.RequireUpper, "flags are OR-ed")
		assert.True(t, got.RequireDigit)
	})

	t.Run("does not alias override pointers", func(t *testing.T) {
		over := policy.Policy{MinLen: policy.Int(6)}
		got := policy.Merge(base, over)
		*over.MinLen = 1
		assert.Equal(t, 6, *got.MinLen)
	})
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "any", policy.Policy{}.String())
	p := policy.Policy{MinLen: policy.Int(8), RequireDigit: true, SpecialCharset: policy.Charset("!@")}
	assert.Equal(t, `min_len=8 digit special_charset="!@"`, p.String())
}
