package modcount

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestCounter(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)
	properties.Property("n advances are observed as changed",
		prop.ForAll(
			func(n int) bool {
				var c Counter
				s := c.Load()
				for i := 0; i < n; i++ {
					c.Advance()
				}
				return c.Changed(s) == (n > 0)
			},
			gen.IntRange(0, 100),
		))
	properties.Property("AdvanceBy is monotonic",
		prop.ForAll(
			func(n int) bool {
				var c Counter
				before := c.Load()
				c.AdvanceBy(n)
				return c.Load() > before
			},
			gen.IntRange(-10, 100),
		))
	properties.TestingRun(t)
}
