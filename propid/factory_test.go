package propid

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactoryCreateValidPassthrough(t *testing.T) {
	f := NewFactory()
	id := f.Create("isRed")
	assert.Equal(t, "isRed", id.Raw())
}

func TestFactoryCreateEmptyFallsBackToSentinel(t *testing.T) {
	f := NewFactory()
	id := f.Create("")
	assert.Equal(t, FallbackSentinel, id.Raw())
}

func TestFactoryCreateInvalidFallsBackToSentinel(t *testing.T) {
	f := NewFactory()
	id := f.Create("has whitespace")
	assert.Equal(t, FallbackSentinel, id.Raw())

	id = f.Create("@invalid@")
	assert.Equal(t, FallbackSentinel, id.Raw())
}

func TestFactoryCreateUniqueDeterministic(t *testing.T) {
	f := NewFactory()
	seeds := []string{"", "a", "a-long-seed-with-unicode-温度-and-spaces and punctuation!", strings.Repeat("x", 4096)}
	for _, seed := range seeds {
		a := f.CreateUnique(seed)
		b := f.CreateUnique(seed)
		assert.Equal(t, a.Raw(), b.Raw(), "seed %q must be deterministic", seed)
		assert.True(t, strings.HasPrefix(a.Raw(), "prop_"))
	}
}

func TestFactoryCreateUniqueDistinctForDistinctSeeds(t *testing.T) {
	f := NewFactory()
	a := f.CreateUnique("seed-one")
	b := f.CreateUnique("seed-two")
	assert.NotEqual(t, a.Raw(), b.Raw())
}

func TestFactoryConcurrentUse(t *testing.T) {
	f := NewFactory()
	const n = 200
	var wg sync.WaitGroup
	results := make([]ID, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = f.CreateUnique(fmt.Sprintf("seed-%d", i))
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for i, id := range results {
		assert.NotEmpty(t, id.Raw(), "index %d", i)
		seen[id.Raw()] = true
	}
	assert.Len(t, seen, n, "expected distinct seeds to produce distinct ids")
}
