package kernel_test

import (
	"testing"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should store amount rounded to 2 decimals", func(t *testing.T) {
		m, err := kernel.NewMoney(10.555)

		require.NoError(t, err)
		assert.Equal(t, int64(1056), m.Cents())
		assert.InDelta(t, 10.56, m.Value(), 0.0001)
	})

	t.Run("should keep exact 2-decimal amounts", func(t *testing.T) {
		m, err := kernel.NewMoney(19.99)

		require.NoError(t, err)
		assert.Equal(t, int64(1999), m.Cents())
	})

	t.Run("should round on the float64 value, not the decimal literal", func(t *testing.T) {
		// 1.005 has no exact binary representation; the closest float64 is
		// 1.00499..., which sits below the midpoint and rounds down.
		m, err := kernel.NewMoney(1.005)

		require.NoError(t, err)
		assert.Equal(t, int64(100), m.Cents())
	})

	t.Run("should accept zero", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("should fail with negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(-0.01)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value equals constructed zero", func(t *testing.T) {
		var zero kernel.Money
		m, _ := kernel.NewMoney(0)

		assert.True(t, zero.IsEqual(m))
	})
}

func TestMoneyFromCents(t *testing.T) {
	t.Run("should create from exact cents", func(t *testing.T) {
		m := kernel.MoneyFromCents(1250)

		assert.InDelta(t, 12.50, m.Value(), 0.0001)
	})

	t.Run("should floor negative cents to zero", func(t *testing.T) {
		m := kernel.MoneyFromCents(-1)

		assert.True(t, m.IsZero())
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	ten, _ := kernel.NewMoney(10)
	three, _ := kernel.NewMoney(3.50)

	t.Run("add returns new value", func(t *testing.T) {
		sum := ten.Add(three)

		assert.Equal(t, int64(1350), sum.Cents())
		assert.Equal(t, int64(1000), ten.Cents())
	})

	t.Run("subtract returns difference", func(t *testing.T) {
		diff, err := ten.Subtract(three)

		require.NoError(t, err)
		assert.Equal(t, int64(650), diff.Cents())
	})

	t.Run("subtract below zero fails without clamping", func(t *testing.T) {
		_, err := three.Subtract(ten)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("multiply by quantity", func(t *testing.T) {
		total, err := three.MultiplyBy(3)

		require.NoError(t, err)
		assert.Equal(t, int64(1050), total.Cents())
	})

	t.Run("multiply by negative factor fails", func(t *testing.T) {
		_, err := three.MultiplyBy(-1)

		require.Error(t, err)
	})

	t.Run("addition of rounded amounts stays exact", func(t *testing.T) {
		a, _ := kernel.NewMoney(0.10)
		b, _ := kernel.NewMoney(0.20)

		assert.Equal(t, int64(30), a.Add(b).Cents())
	})
}

func TestMoney_Comparison(t *testing.T) {
	a, _ := kernel.NewMoney(5)
	b, _ := kernel.NewMoney(7)
	c, _ := kernel.NewMoney(5.00)

	assert.True(t, a.LessThan(b))
	assert.False(t, b.LessThan(a))
	assert.False(t, a.LessThan(c))
	assert.True(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(b))
}

func TestMoney_String(t *testing.T) {
	m, _ := kernel.NewMoney(7.05)

	assert.Equal(t, "7.05", m.String())
}
