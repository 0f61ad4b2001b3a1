package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	t.Run("Formatted Amount", func(t *testing.T) {
		v, ok := Currency("$1,234")
		assert.True(t, ok)
		assert.Equal(t, 1234.0, v)
	})

	t.Run("Decimal And Whitespace", func(t *testing.T) {
		v, ok := Currency("  $12,345.67 ")
		assert.True(t, ok)
		assert.Equal(t, 12345.67, v)
	})

	t.Run("Plain Number", func(t *testing.T) {
		v, ok := Currency("500")
		assert.True(t, ok)
		assert.Equal(t, 500.0, v)
	})

	t.Run("Negative Amount", func(t *testing.T) {
		v, ok := Currency("-$250.00")
		assert.True(t, ok)
		assert.Equal(t, -250.0, v)
	})

	t.Run("Blank Is Not A Number", func(t *testing.T) {
		_, ok := Currency("")
		assert.False(t, ok)
	})

	t.Run("Symbols Only Is Not A Number", func(t *testing.T) {
		_, ok := Currency("$,")
		assert.False(t, ok)
	})

	t.Run("Text Is Not A Number", func(t *testing.T) {
		_, ok := Currency("TBD")
		assert.False(t, ok)
	})
}

func TestCountyState(t *testing.T) {
	t.Run("State Prefixed County", func(t *testing.T) {
		state, name := CountyState("FL-MiamiDade")
		assert.Equal(t, "FL", state)
		assert.Equal(t, "MiamiDade", name)
	})

	t.Run("Lowercase Prefix Is Uppercased", func(t *testing.T) {
		state, _ := CountyState("fl-Broward")
		assert.Equal(t, "FL", state)
	})

	t.Run("No Separator", func(t *testing.T) {
		state, name := CountyState("MiamiDade")
		assert.Equal(t, "", state)
		assert.Equal(t, "MiamiDade", name)
	})

	t.Run("Long Prefix Is Not A State", func(t *testing.T) {
		state, name := CountyState("Miami-Dade")
		assert.Equal(t, "", state)
		assert.Equal(t, "Miami-Dade", name)
	})

	t.Run("Numeric Prefix Is Not A State", func(t *testing.T) {
		state, _ := CountyState("12-Somewhere")
		assert.Equal(t, "", state)
	})

	t.Run("Blank", func(t *testing.T) {
		state, name := CountyState("")
		assert.Equal(t, "", state)
		assert.Equal(t, "", name)
	})
}

func TestNameList(t *testing.T) {
	t.Run("Semicolon Delimited", func(t *testing.T) {
		names := NameList("DOE, JOHN; DOE, JANE;SMITH, ALEX")
		assert.Equal(t, []string{"DOE, JOHN", "DOE, JANE", "SMITH, ALEX"}, names)
	})

	t.Run("Empty Segments Dropped", func(t *testing.T) {
		names := NameList("DOE, JOHN;; ;DOE, JANE;")
		assert.Equal(t, []string{"DOE, JOHN", "DOE, JANE"}, names)
	})

	t.Run("Blank Input", func(t *testing.T) {
		assert.Nil(t, NameList("   "))
	})
}

func TestFirstLast(t *testing.T) {
	t.Run("First And Last Token", func(t *testing.T) {
		first, last := FirstLast("Jane Q Doe")
		assert.Equal(t, "Jane", first)
		assert.Equal(t, "Doe", last)
	})

	t.Run("Single Token Is Both", func(t *testing.T) {
		first, last := FirstLast("Cher")
		assert.Equal(t, "Cher", first)
		assert.Equal(t, "Cher", last)
	})

	t.Run("Two Tokens", func(t *testing.T) {
		first, last := FirstLast("John Doe")
		assert.Equal(t, "John", first)
		assert.Equal(t, "Doe", last)
	})
}

func TestAuctionDate(t *testing.T) {
	t.Run("ISO Date", func(t *testing.T) {
		d := AuctionDate("2025-03-15")
		assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("US Date", func(t *testing.T) {
		d := AuctionDate("03/15/2025")
		assert.Equal(t, 2025, d.Year())
		assert.Equal(t, time.March, d.Month())
	})

	t.Run("Blank Sorts Earliest", func(t *testing.T) {
		assert.True(t, AuctionDate("").IsZero())
	})

	t.Run("Garbage Sorts Earliest", func(t *testing.T) {
		assert.True(t, AuctionDate("soon").IsZero())
	})
}
