package combine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := NewConfig()
		assert.Equal(t, 4096, cfg.GetInt("feeder.chunk_size"))
		assert.Equal(t, 1<<20, cfg.GetInt("feeder.max_buffer"))
		assert.Equal(t, 0, cfg.GetInt("log.verbosity"))
		assert.Equal(t, `\n`, cfg.GetString("split.delim"))
		assert.True(t, cfg.GetBool("split.keep_tail"))
		assert.Equal(t, "digit", cfg.GetString("runs.class"))
	})

	t.Run("set and get", func(t *testing.T) {
		cfg := NewConfig()
		cfg.SetBool("x.bool", true)
		cfg.SetString("x.string", ";")
		cfg.SetInt("feeder.chunk_size", 1)

		assert.True(t, cfg.GetBool("x.bool"))
		assert.Equal(t, ";", cfg.GetString("x.string"))
		assert.Equal(t, 1, cfg.GetInt("feeder.chunk_size"))
	})

	t.Run("misuse panics", func(t *testing.T) {
		cfg := NewConfig()
		assert.Panics(t, func() { cfg.SetBool("feeder.chunk_size", true) })
		assert.Panics(t, func() { cfg.GetString("feeder.chunk_size") })
		assert.Panics(t, func() { cfg.GetInt("does.not.exist") })
	})

	t.Run("debug output is sorted", func(t *testing.T) {
		var out strings.Builder
		NewConfig().Debug(&out)
		assert.Equal(t, strings.Join([]string{
			"Configuration",
			"feeder.chunk_size : 4096 (int)",
			"feeder.max_buffer : 1048576 (int)",
			"log.verbosity     : 0 (int)",
			"runs.class        : digit (string)",
			"split.delim       : \\n (string)",
			"split.keep_tail   : true (bool)",
			"",
		}, "\n"), out.String())
	})
}
