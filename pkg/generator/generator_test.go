package generator_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wordmunge/pkg/generator"
	"github.com/dmitrymomot/wordmunge/pkg/plan"
	"github.com/dmitrymomot/wordmunge/pkg/policy"
	"github.com/dmitrymomot/wordmunge/pkg/transform"
)

var set1 = transform.Table{'e': "3", 'a': "4", 'o': "0", 'i': "1", 'l': "1", 's': "$"}

func words(ws ...string) iter.Seq[string] {
	return slices.Values(ws)
}

func TestGenerate_BaseOnly(t *testing.T) {
	p := plan.New(nil, nil, true, policy.Policy{})

	got := slices.Collect(generator.Generate(words("Hello"), p))
	assert.Equal(t, []string{"hello", "HELLO", "Hello"}, got)
}

func TestGenerate_PolicyPrunesInCaseVariantOrder(t *testing.T) {
	p := plan.New(nil, nil, true, policy.Policy{RequireUpper: true})

	got := slices.Collect(generator.Generate(words("Hello"), p))
	assert.Equal(t, []string{"HELLO", "Hello"}, got)
}

func TestGenerate_LeetAndSuffix(t *testing.T) {
	p := plan.New([]transform.Table{set1}, []string{"1"}, true, policy.Policy{})

	got := slices.Collect(generator.Generate(words("password"), p))
	expected := []string{
		"password", "p4$$w0rd",
		"PASSWORD", "PASSWORD",
		"Password", "P4$$w0rd",
		"password1", "p4$$w0rd1",
		"PASSWORD1", "PASSWORD1",
		"Password1", "P4$$w0rd1",
	}
	assert.Equal(t, expected, got)

	for _, c := range got {
		assert.NotEmpty(t, c)
		assert.LessOrEqual(t, len(c), len("password1"))
	}
}

func TestGenerate_WithoutBase(t *testing.T) {
	p := plan.New(nil, []string{"!", "2024"}, false, policy.Policy{})

	got := slices.Collect(generator.Generate(words("abc"), p))
	assert.Equal(t, []string{"abc!", "ABC!", "Abc!", "abc2024", "ABC2024", "Abc2024"}, got)
}

func TestGenerate_LeetVariantsArePolicyFiltered(t *testing.T) {
	p := plan.New([]transform.Table{set1}, nil, true, policy.Policy{RequireDigit: true})

	got := slices.Collect(generator.Generate(words("password"), p))
	assert.Equal(t, []string{"p4$$w0rd", "P4$$w0rd"}, got)
}

func TestGenerate_SeedPreparation(t *testing.T) {
	p := plan.New(nil, nil, true, policy.Policy{})

	got := slices.Collect(generator.Generate(words("  ABC \n", "", "   ", "x"), p))
	assert.Equal(t, []string{"abc", "ABC", "Abc", "x", "X"}, got)
}

func TestGenerate_MultipleTablesProduceOneVariantEach(t *testing.T) {
	t1 := transform.Table{'a': "4"}
	t2 := transform.Table{'a': "@"}
	p := plan.New([]transform.Table{t1, t2}, nil, true, policy.Policy{})

	got := slices.Collect(generator.Generate(words("aa"), p))
	assert.Equal(t, []string{"aa", "44", "@@", "AA", "AA", "AA", "Aa", "A4", "A@"}, got)
}

func TestGenerate_StopsWhenConsumerStops(t *testing.T) {
	p := plan.New([]transform.Table{set1}, []string{"1", "2", "3"}, true, policy.Policy{})

	var got []string
	for c := range generator.Generate(words("password", "letmein"), p) {
		got = append(got, c)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []string{"password", "p4$$w0rd", "PASSWORD"}, got)
}

func TestGenerate_IsLazy(t *testing.T) {
	p := plan.New(nil, nil, true, policy.Policy{})

	pulled := 0
	input := func(yield func(string) bool) {
		for _, w := range []string{"a", "b", "c"} {
			pulled++
			if !yield(w) {
				return
			}
		}
	}

	for range generator.Generate(input, p) {
		break
	}
	assert.Equal(t, 1, pulled, "only the first word should have been read")
}

func TestMungeSeed(t *testing.T) {
	p := plan.New([]transform.Table{set1}, []string{"ignored"}, false, policy.Policy{MinLen: policy.Int(4)})

	got := slices.Collect(generator.MungeSeed("Sea", p))
	assert.Empty(t, got)

	got = slices.Collect(generator.MungeSeed("seal", p))
	assert.Equal(t, []string{"seal", "$341", "SEAL", "SEAL", "Seal", "S341"}, got)
}

func TestFilterPolicy(t *testing.T) {
	pol := policy.Policy{MinLen: policy.Int(6), RequireDigit: true}

	got := slices.Collect(generator.FilterPolicy(words("abcde", " abcdef1 ", "", "Password123", "password"), pol))
	assert.Equal(t, []string{"abcdef1", "Password123"}, got)

	got = slices.Collect(generator.FilterPolicy(words("a", "  ", "B"), policy.Policy{}))
	assert.Equal(t, []string{"a", "B"}, got, "blank lines are dropped even with an empty policy")
}

func TestGenerate_ReRunsFromInput(t *testing.T) {
	p := plan.New(nil, nil, true, policy.Policy{})
	seq := generator.Generate(words("ab"), p)

	first := slices.Collect(seq)
	require.Equal(t, []string{"ab", "AB", "Ab"}, first)
	assert.Equal(t, first, slices.Collect(seq))
}
