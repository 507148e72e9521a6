package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDisplayPrice(t *testing.T) {
	t.Run("Simple Price", func(t *testing.T) {
		cents, err := ParseDisplayPrice("R$ 25,90")

		assert.NoError(t, err)
		assert.Equal(t, int64(2590), cents)
	})

	t.Run("Price With Thousands Separator", func(t *testing.T) {
		cents, err := ParseDisplayPrice("R$ 1.234,56")

		assert.NoError(t, err)
		assert.Equal(t, int64(123456), cents)
	})

	t.Run("Price Without Cents", func(t *testing.T) {
		cents, err := ParseDisplayPrice("R$ 120")

		assert.NoError(t, err)
		assert.Equal(t, int64(12000), cents)
	})

	t.Run("Price Without Currency Prefix", func(t *testing.T) {
		cents, err := ParseDisplayPrice("45,00")

		assert.NoError(t, err)
		assert.Equal(t, int64(4500), cents)
	})

	t.Run("Empty String", func(t *testing.T) {
		_, err := ParseDisplayPrice("")

		assert.Error(t, err)
	})

	t.Run("Garbage Input", func(t *testing.T) {
		_, err := ParseDisplayPrice("free")

		assert.Error(t, err)
	})

	t.Run("Single Cent Digit", func(t *testing.T) {
		_, err := ParseDisplayPrice("R$ 25,9")

		assert.Error(t, err, "cents must have exactly two digits")
	})

	t.Run("Negative Price", func(t *testing.T) {
		_, err := ParseDisplayPrice("R$ -10,00")

		assert.Error(t, err)
	})
}

func TestFormatDisplayPrice(t *testing.T) {
	t.Run("Simple Amount", func(t *testing.T) {
		assert.Equal(t, "R$ 25,90", FormatDisplayPrice(2590))
	})

	t.Run("Thousands Grouping", func(t *testing.T) {
		assert.Equal(t, "R$ 1.234,56", FormatDisplayPrice(123456))
	})

	t.Run("Zero", func(t *testing.T) {
		assert.Equal(t, "R$ 0,00", FormatDisplayPrice(0))
	})

	t.Run("Round Trip", func(t *testing.T) {
		cents, err := ParseDisplayPrice(FormatDisplayPrice(99300))

		assert.NoError(t, err)
		assert.Equal(t, int64(99300), cents)
	})
}

func TestParseRegistrationLinkJWT(t *testing.T) {
	const secret = "test-secret"

	t.Run("Valid Token", func(t *testing.T) {
		token, err := GenerateRegistrationLinkJWT("institution-001", secret, 24)
		assert.NoError(t, err)

		institutionID, err := ParseRegistrationLinkJWT(token, secret)

		assert.NoError(t, err)
		assert.Equal(t, "institution-001", institutionID)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := GenerateRegistrationLinkJWT("institution-001", secret, 24)
		assert.NoError(t, err)

		_, err = ParseRegistrationLinkJWT(token, "another-secret")

		assert.Error(t, err)
	})

	t.Run("Expired Token", func(t *testing.T) {
		token, err := GenerateRegistrationLinkJWT("institution-001", secret, -1)
		assert.NoError(t, err)

		_, err = ParseRegistrationLinkJWT(token, secret)

		assert.Error(t, err)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		_, err := ParseRegistrationLinkJWT("not-a-jwt", secret)

		assert.Error(t, err)
	})
}
