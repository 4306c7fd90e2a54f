package utils_test

import (
	"testing"

	"bundle-importer/core/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToInt64(t *testing.T) {
	assert.Equal(t, int64(42), utils.ToInt64(int64(42)))
	assert.Equal(t, int64(42), utils.ToInt64(42))
	assert.Equal(t, int64(42), utils.ToInt64(uint64(42)))
	assert.Equal(t, int64(42), utils.ToInt64("42"))
	assert.Equal(t, int64(42), utils.ToInt64([]byte("42")))
	assert.Equal(t, int64(0), utils.ToInt64("not a number"))
}

func TestToBool(t *testing.T) {
	assert.True(t, utils.ToBool(true))
	assert.True(t, utils.ToBool(1))
	assert.True(t, utils.ToBool(int64(1)))
	assert.True(t, utils.ToBool("1"))
	assert.True(t, utils.ToBool([]byte("true")))
	assert.False(t, utils.ToBool(0))
	assert.False(t, utils.ToBool("0"))
	assert.False(t, utils.ToBool(nil))
}

func TestToDecimal(t *testing.T) {
	// MySQL DECIMAL columns come back as []byte with the column scale applied
	d := utils.ToDecimal([]byte("7.5000"))
	assert.Equal(t, "7.5000", d.StringFixed(4))

	d = utils.ToDecimal("2.25")
	assert.True(t, d.Equal(decimal.RequireFromString("2.25")))

	assert.True(t, utils.ToDecimal(nil).IsZero())
	assert.True(t, utils.ToDecimal("garbage").IsZero())
}
