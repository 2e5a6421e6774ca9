package fortytwo

// HandPoints is what a hand is worth between the two partnerships:
// 35 in count dominoes plus 1 for each of the 7 tricks
const HandPoints = 42

// HandResult is the scoring breakdown for a completed hand.
// Partnership values are indexed by Partnership
type HandResult struct {
	Contract    Bid         `json:"contract"`
	Declarer    Partnership `json:"declarer"`
	CountPoints [2]int      `json:"countPoints"`
	TricksWon   [2]int      `json:"tricksWon"`
	HandScore   [2]int      `json:"handScore"`
	BidMade     bool        `json:"bidMade"`
	Marks       [2]int      `json:"marks"`
}

// ScoreHand scores a sealed hand. Only the orchestrator may call it, and
// only with seven completed tricks; anything else is a precondition
// violation and panics rather than scoring a half-played hand
func ScoreHand(tricks []*Trick, contract Bid, doubleMarksOnMax bool) HandResult {
	if len(tricks) != TricksPerHand {
		panic("scoring a hand without seven tricks")
	}

	result := HandResult{
		Contract: contract,
		Declarer: contract.Position.Partnership(),
	}

	for _, t := range tricks {
		if t == nil || !t.Complete {
			panic("scoring an incomplete trick")
		}
		side := t.Winner.Partnership()
		result.CountPoints[side] += t.Points()
		result.TricksWon[side]++
	}

	for side := NorthSouth; side <= EastWest; side++ {
		result.HandScore[side] = result.CountPoints[side] + result.TricksWon[side]
	}

	// 35 count points and 7 trick points, every hand, no exceptions
	if result.HandScore[NorthSouth]+result.HandScore[EastWest] != HandPoints {
		panic("hand scores do not total 42")
	}

	marks := contract.MarkValue(doubleMarksOnMax)
	result.BidMade = result.HandScore[result.Declarer] >= contract.Amount
	if result.BidMade {
		result.Marks[result.Declarer] = marks
	} else {
		// set: the defenders take the contract's marks
		result.Marks[result.Declarer.Opponents()] = marks
	}

	return result
}
