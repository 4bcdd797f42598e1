package geo

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticResolver(t *testing.T) {
	r := NewStaticResolver(map[string]string{
		"United States": "USA",
		"canada":        "CAN",
	})

	tests := []struct {
		name string
		code string
		ok   bool
	}{
		{"United States", "USA", true},
		{"UNITED STATES", "USA", true},
		{"  united states  ", "USA", true},
		{"Canada", "CAN", true},
		{"Atlantis", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		code, ok := r.Resolve(tt.name)
		assert.Equal(t, tt.ok, ok, "name %q", tt.name)
		assert.Equal(t, tt.code, code, "name %q", tt.name)
	}
}

func TestResolverFunc(t *testing.T) {
	r := ResolverFunc(func(name string) (string, bool) {
		if name == "Japan" {
			return "JPN", true
		}
		return "", false
	})

	code, ok := r.Resolve("Japan")
	assert.True(t, ok)
	assert.Equal(t, "JPN", code)

	_, ok = r.Resolve("Mars")
	assert.False(t, ok)
}

func TestCachedResolverMemoizesNegatives(t *testing.T) {
	calls := 0
	r := NewCachedResolver(ResolverFunc(func(name string) (string, bool) {
		calls++
		return "", false
	}))

	_, ok := r.Resolve("Atlantis")
	assert.False(t, ok)
	_, ok = r.Resolve("atlantis")
	assert.False(t, ok)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, r.Len())
}

func TestCachedResolverConcurrent(t *testing.T) {
	r := NewCachedResolver(NewStaticResolver(map[string]string{"Japan": "JPN"}))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, ok := r.Resolve("Japan")
			assert.True(t, ok)
			assert.Equal(t, "JPN", code)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, r.Len())
}

func TestISO3ResolverVariants(t *testing.T) {
	r := NewISO3Resolver()

	tests := []struct {
		name string
		code string
	}{
		{"United States of America", "USA"},
		{"Great Britain", "GBR"},
		{"Korea, Republic of", "KOR"},
		{"Russian Federation", "RUS"},
		{"Hong Kong", "HKG"},
	}
	for _, tt := range tests {
		code, ok := r.Resolve(tt.name)
		require.True(t, ok, "name %q", tt.name)
		assert.Equal(t, tt.code, code, "name %q", tt.name)
	}

	_, ok := r.Resolve("Not Reported")
	assert.False(t, ok)
}
