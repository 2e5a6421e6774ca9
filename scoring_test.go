package fortytwo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moonollie/fortytwo/dominoes"
	utils "github.com/moonollie/fortytwo/internal"
)

// sweepTricks partitions the full set into seven tricks that North wins
// outright under a sixes contract
func sweepTricks(t *testing.T) []*Trick {
	t.Helper()

	layout := [][]string{
		{"6-6", "6-5", "6-4", "6-3"},
		{"5-5", "5-4", "5-3", "5-2"},
		{"5-1", "5-0", "4-4", "4-3"},
		{"6-2", "6-1", "6-0", "4-2"},
		{"4-1", "4-0", "3-3", "3-2"},
		{"3-1", "3-0", "2-2", "2-1"},
		{"2-0", "1-1", "1-0", "0-0"},
	}

	tricks := []*Trick{}
	for _, plays := range layout {
		tricks = append(tricks, playOut(t, dominoes.Sixes, plays...))
	}
	return tricks
}

// splitTricks reorders two tricks of the sweep so East takes both
// ten-count tricks, leaving North-South 20 and East-West 22
func splitTricks(t *testing.T) []*Trick {
	t.Helper()

	tricks := sweepTricks(t)
	tricks[1] = playOut(t, dominoes.Sixes, "5-4", "5-5", "5-3", "5-2")
	tricks[4] = playOut(t, dominoes.Sixes, "4-0", "4-1", "3-3", "3-2")
	return tricks
}

func TestScoreHandSweep(t *testing.T) {
	contract := Bid{PlayerID: "p1", Position: North, Amount: 30, Trump: dominoes.Sixes}
	result := ScoreHand(sweepTricks(t), contract, false)

	utils.AssertEqual(t, result.Declarer, NorthSouth)
	utils.AssertEqual(t, result.TricksWon[NorthSouth], 7)
	utils.AssertEqual(t, result.CountPoints[NorthSouth], 35)
	utils.AssertEqual(t, result.HandScore[NorthSouth], 42)
	utils.AssertEqual(t, result.HandScore[EastWest], 0)
	utils.AssertTrue(t, result.BidMade)
	utils.AssertEqual(t, result.Marks[NorthSouth], 1)
	utils.AssertEqual(t, result.Marks[EastWest], 0)
}

func TestScoreHandSplit(t *testing.T) {
	tricks := splitTricks(t)

	t.Run("hand scores always total 42", func(t *testing.T) {
		contract := Bid{Position: North, Amount: 30, Trump: dominoes.Sixes}
		result := ScoreHand(tricks, contract, false)

		utils.AssertEqual(t, result.HandScore[NorthSouth]+result.HandScore[EastWest], HandPoints)
		utils.AssertEqual(t, result.HandScore[NorthSouth], 20)
		utils.AssertEqual(t, result.HandScore[EastWest], 22)
	})

	t.Run("a set awards the contract's marks to the defenders", func(t *testing.T) {
		contract := Bid{Position: North, Amount: 30, Trump: dominoes.Sixes}
		result := ScoreHand(tricks, contract, false)

		utils.AssertEqual(t, result.BidMade, false)
		utils.AssertEqual(t, result.Marks[NorthSouth], 0)
		utils.AssertEqual(t, result.Marks[EastWest], 1)
	})

	t.Run("defenders making their own score is not enough to set", func(t *testing.T) {
		contract := Bid{Position: East, Amount: 30, Trump: dominoes.Sixes}
		result := ScoreHand(tricks, contract, false)

		// East-West bid 30 and took only 22
		utils.AssertEqual(t, result.Declarer, EastWest)
		utils.AssertEqual(t, result.BidMade, false)
		utils.AssertEqual(t, result.Marks[NorthSouth], 1)
	})
}

func TestScoreHandMarks(t *testing.T) {
	tricks := sweepTricks(t)

	t.Run("a made 42 bid is worth two marks when configured", func(t *testing.T) {
		contract := Bid{Position: North, Amount: 42, Trump: dominoes.Sixes}

		result := ScoreHand(tricks, contract, true)
		assert.True(t, result.BidMade)
		assert.Equal(t, 2, result.Marks[NorthSouth])

		result = ScoreHand(tricks, contract, false)
		assert.Equal(t, 1, result.Marks[NorthSouth])
	})

	t.Run("a set 42 bid hands both marks to the defenders", func(t *testing.T) {
		contract := Bid{Position: East, Amount: 42, Trump: dominoes.Sixes}

		result := ScoreHand(tricks, contract, true)
		assert.False(t, result.BidMade)
		assert.Equal(t, 2, result.Marks[NorthSouth])
	})
}

func TestScoreHandPreconditions(t *testing.T) {
	assertPanics := func(t *testing.T, fn func()) {
		t.Helper()
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Expected to panic, but it didn't")
			}
		}()
		fn()
	}

	contract := Bid{Position: North, Amount: 30, Trump: dominoes.Sixes}

	t.Run("fewer than seven tricks", func(t *testing.T) {
		assertPanics(t, func() {
			ScoreHand(sweepTricks(t)[:6], contract, false)
		})
	})

	t.Run("an unsealed trick", func(t *testing.T) {
		tricks := sweepTricks(t)
		tricks[6] = playOut(t, dominoes.Sixes, "2-0", "1-1", "1-0")

		assertPanics(t, func() {
			ScoreHand(tricks, contract, false)
		})
	})
}
