package config

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroFields walks the struct and reports the dotted paths of every zero-valued field,
// unless the field is tagged `test:"nullable"`.
func zeroFields(value reflect.Value, path string, nullable bool) (fields []string) {
	if value.Kind() != reflect.Struct {
		if value.IsZero() && !nullable {
			return []string{path}
		}

		return nil
	}

	typ := value.Type()
	for i := range value.NumField() {
		field := typ.Field(i)
		isNullable := field.Tag.Get("test") == "nullable"
		fields = append(fields, zeroFields(value.Field(i), path+"."+field.Name, isNullable)...)
	}

	return fields
}

func TestDefault(t *testing.T) {
	t.Run("no zero fields", func(t *testing.T) {
		require.Empty(t, zeroFields(reflect.ValueOf(*Default()), "Config", false))
	})

	t.Run("nullable fields stay zero", func(t *testing.T) {
		cfg := Default()
		assert.Zero(t, cfg.NET.ReadTimeout)
		assert.Empty(t, cfg.Auth.Secret)
		assert.Empty(t, cfg.Auth.SecretFile)
	})

	t.Run("values", func(t *testing.T) {
		cfg := Default()
		assert.Equal(t, Links, cfg.Mode)
		assert.Equal(t, 8192, cfg.Headers.MaxRegionSize)
		assert.Equal(t, uint64(100*1024), cfg.Body.MaxSize)
		assert.Equal(t, 2048, cfg.NET.ReadBufferSize)
		assert.Equal(t, 5*time.Second, cfg.NET.AcceptLoopInterruptPeriod)
		assert.Equal(t, "sha256", cfg.Shortener.Hash)
		assert.Equal(t, 10, cfg.Shortener.MaxAttempts)
		assert.Equal(t, 7, cfg.Shortener.CodeLength)
	})

	t.Run("every call returns a fresh copy", func(t *testing.T) {
		first := Default()
		first.Shortener.CodeLength = 3
		require.Equal(t, 7, Default().Shortener.CodeLength)
	})

	t.Run("zero fields are reported", func(t *testing.T) {
		cfg := Default()
		cfg.Shortener.MaxAttempts = 0
		cfg.Auth.Secret = ""
		require.Equal(t, []string{"Config.Shortener.MaxAttempts"}, zeroFields(reflect.ValueOf(*cfg), "Config", false))
	})
}
