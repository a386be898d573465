package kernel_test

import (
	"testing"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	t.Run("should accept international format", func(t *testing.T) {
		phone, err := kernel.NewPhone("+254712345678")

		require.NoError(t, err)
		require.NoError(t, phone.Validate())
		assert.Equal(t, "+254712345678", phone.String())
	})

	t.Run("should accept local format", func(t *testing.T) {
		phone, err := kernel.NewPhone("0712345678")

		require.NoError(t, err)
		assert.Equal(t, "0712345678", phone.String())
	})

	t.Run("should accept 1xx operator block", func(t *testing.T) {
		_, err := kernel.NewPhone("0112345678")

		require.NoError(t, err)
	})

	t.Run("should fail on empty value", func(t *testing.T) {
		_, err := kernel.NewPhone("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail on wrong length", func(t *testing.T) {
		_, err := kernel.NewPhone("071234567")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail on foreign prefix", func(t *testing.T) {
		_, err := kernel.NewPhone("+15551234567")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail on non-digit characters", func(t *testing.T) {
		_, err := kernel.NewPhone("07123x5678")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPhone_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var phone kernel.Phone

		err := phone.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPhoneIsNotConstructed, err)
	})
}

func TestPhone_IsEqual(t *testing.T) {
	t.Run("should compare by stored form", func(t *testing.T) {
		a, _ := kernel.NewPhone("0712345678")
		b, _ := kernel.NewPhone("0712345678")
		c, _ := kernel.NewPhone("+254712345678")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
