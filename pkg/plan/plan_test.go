package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/wordmunge/pkg/plan"
	"github.com/dmitrymomot/wordmunge/pkg/policy"
	"github.com/dmitrymomot/wordmunge/pkg/transform"
)

func TestNew_IsImmutable(t *testing.T) {
	tables := []transform.Table{{'a': "4"}}
	suffixes := []string{"1", "1", "", "!"}
	pol := policy.Policy{MinLen: policy.Int(4)}

	p := plan.New(tables, suffixes, true, pol)

	tables[0]['a'] = "@"
	suffixes[0] = "x"
	*pol.MinLen = 100

	assert.Equal(t, "4", p.LeetTables()[0]['a'])
	assert.Equal(t, []string{"1", "!"}, p.Suffixes())
	assert.Equal(t, 4, *p.Policy().MinLen)

	got := p.Suffixes()
	got[0] = "changed"
	assert.Equal(t, "1", p.Suffixes()[0])

	lt := p.LeetTables()
	lt[0]['a'] = "changed"
	assert.Equal(t, "4", p.LeetTables()[0]['a'])
}
