package sessions

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_WhenCreated_ThenNothingIsActive(t *testing.T) {
	r := NewRegistry()

	assert.False(t, r.IsActive("general"))
	assert.Empty(t, r.Active())
}

func TestRegistry_Activate_WhenCalledTwice_ThenIsIdempotent(t *testing.T) {
	// Arrange
	r := NewRegistry()

	// Act
	first := r.Activate("raid-night")
	second := r.Activate("raid-night")

	// Assert
	assert.True(t, first)
	assert.False(t, second)
	assert.True(t, r.IsActive("raid-night"))
	assert.Equal(t, []string{"raid-night"}, r.Active())
}

func TestRegistry_Activate_WhenScopeBlank_ThenIgnored(t *testing.T) {
	r := NewRegistry()

	assert.False(t, r.Activate("   "))
	assert.Empty(t, r.Active())
}

func TestRegistry_Activate_WhenScopeHasSurroundingSpace_ThenTrimmed(t *testing.T) {
	r := NewRegistry()

	r.Activate("  raid-night ")

	assert.True(t, r.IsActive("raid-night"))
}

func TestRegistry_Deactivate_WhenActive_ThenRemovesScope(t *testing.T) {
	// Arrange
	r := NewRegistry()
	r.Activate("a")
	r.Activate("b")

	// Act
	removed := r.Deactivate("a")
	again := r.Deactivate("a")

	// Assert
	assert.True(t, removed)
	assert.False(t, again)
	assert.False(t, r.IsActive("a"))
	assert.True(t, r.IsActive("b"))
}

func TestRegistry_Active_WhenManyScopes_ThenSorted(t *testing.T) {
	r := NewRegistry()
	for _, s := range []string{"zeta", "alpha", "mid"} {
		r.Activate(s)
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Active())
}

func TestRegistry_WhenUsedConcurrently_ThenConsistent(t *testing.T) {
	// Arrange
	r := NewRegistry()
	var wg sync.WaitGroup

	// Act
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			scope := fmt.Sprintf("scope-%d", i%10)
			r.Activate(scope)
			_ = r.IsActive(scope)
		}(i)
	}
	wg.Wait()

	// Assert
	assert.Len(t, r.Active(), 10)
}
