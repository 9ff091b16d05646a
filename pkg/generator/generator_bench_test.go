package generator_test

import (
	"slices"
	"testing"

	"github.com/dmitrymomot/wordmunge/pkg/generator"
	"github.com/dmitrymomot/wordmunge/pkg/plan"
	"github.com/dmitrymomot/wordmunge/pkg/policy"
	"github.com/dmitrymomot/wordmunge/pkg/transform"
)

func BenchmarkGenerate(b *testing.B) {
	tables := []transform.Table{
		set1,
		{'e': "3", 'a': "@", 'o': "0", 'i': "1", 'l': "1", 's': "$"},
	}
	suffixes := []string{"1", "123456", "12", "2", "123", "!", "."}
	p := plan.New(tables, suffixes, true, policy.Policy{MinLen: policy.Int(8)})
	seeds := []string{"password", "sunshine", "dragon", "football", "monkey"}

	b.ReportAllocs()
	for b.Loop() {
		for range generator.Generate(slices.Values(seeds), p) {
		}
	}
}
