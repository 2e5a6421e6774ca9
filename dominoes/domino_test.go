package dominoes

import (
	"testing"

	utils "github.com/moonollie/fortytwo/internal"
)

func TestDomino(t *testing.T) {
	cases := []struct {
		name       string
		high, low  int
		expectedID string
	}{
		{"lowest tile", 0, 0, "0-0"},
		{"specific tile", 6, 4, "6-4"},
		{"highest double", 6, 6, "6-6"},
	}

	for _, c := range cases {
		d, err := New(c.high, c.low)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, d.ID(), c.expectedID)
	}

	t.Run("out of range", func(t *testing.T) {
		_, err := New(7, 2)
		utils.AssertErrored(t, err)

		_, err = New(3, -1)
		utils.AssertErrored(t, err)
	})

	t.Run("high below low", func(t *testing.T) {
		_, err := New(2, 5)
		utils.AssertErrored(t, err)
	})

	t.Run("double detection", func(t *testing.T) {
		double, _ := New(4, 4)
		utils.AssertTrue(t, double.IsDouble())

		notDouble, _ := New(4, 3)
		utils.AssertEqual(t, notDouble.IsDouble(), false)
	})
}

func TestDominoPointValue(t *testing.T) {
	cases := []struct {
		id       string
		expected int
	}{
		{"5-0", 5},
		{"4-1", 5},
		{"3-2", 5},
		{"6-4", 10},
		{"5-5", 10},
	}

	for _, c := range cases {
		d, err := Parse(c.id)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, d.PointValue(), c.expected)
		utils.AssertTrue(t, d.IsCount())
	}

	t.Run("all other combinations are worth nothing", func(t *testing.T) {
		counters := map[string]bool{"5-0": true, "4-1": true, "3-2": true, "6-4": true, "5-5": true}

		blanks := 0
		for _, d := range NewSet() {
			if counters[d.ID()] {
				continue
			}
			utils.AssertEqual(t, d.PointValue(), 0)
			blanks++
		}

		utils.AssertEqual(t, blanks, 23)
	})
}

func TestDominoSuit(t *testing.T) {
	t.Run("non-double belongs to the suit of its higher pip", func(t *testing.T) {
		d, _ := New(6, 2)
		utils.AssertEqual(t, d.Suit(false), Sixes)
		utils.AssertEqual(t, d.Suit(true), Sixes)
	})

	t.Run("double belongs to its pip suit by default", func(t *testing.T) {
		d, _ := New(5, 5)
		utils.AssertEqual(t, d.Suit(false), Fives)
	})

	t.Run("double belongs to doubles when doubles are their own suit", func(t *testing.T) {
		d, _ := New(5, 5)
		utils.AssertEqual(t, d.Suit(true), Doubles)
	})
}

func TestParse(t *testing.T) {
	d, err := Parse("6-4")
	utils.AssertNoError(t, err)
	utils.AssertEqual(t, d, Domino{High: 6, Low: 4})

	for _, id := range []string{"", "64", "4-6", "7-0", "six-four"} {
		_, err := Parse(id)
		utils.AssertErrored(t, err)
	}
}

func TestParseSuit(t *testing.T) {
	for suit := Blanks; suit <= Doubles; suit++ {
		parsed, err := ParseSuit(suit.String())
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, parsed, suit)
	}

	_, err := ParseSuit("Sevens")
	utils.AssertErrored(t, err)
}
