package redirect

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_getStrategyOpts(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		opts := getStrategyOpts()
		assert.Equal(t, strategyDefaults(), opts)
	})

	t.Run("WithStatusCode", func(t *testing.T) {
		opts := getStrategyOpts(WithStatusCode(http.StatusMovedPermanently))
		testOpts := strategyDefaults()
		testOpts.withStatusCode = http.StatusMovedPermanently
		assert.Equal(t, testOpts, opts)
	})
}

func TestApplyOpts(t *testing.T) {
	// Let's make sure we don't panic on nil options
	opts := strategyDefaults()
	ApplyOpts(&opts, nil)
	assert.Equal(t, strategyDefaults(), opts)
}
