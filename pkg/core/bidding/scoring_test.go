package bidding

import (
	"math"
	"testing"
)

func evenWeights() VendorPriorityWeights {
	return VendorPriorityWeights{Price: 25, Speed: 25, Certainty: 25, Deposit: 25}
}

func cleanBid(name string, amount float64) BidInput {
	// No conditions attached at all: certainty = 50+30+20+15+10+10+5,
	// capped to 100.
	return BidInput{
		BidderName:        name,
		BidAmount:         amount,
		DepositPercentage: 20,
		SettlementDays:    14,
		CashBuyer:         true,
		FinanceApproved:   true,
	}
}

func TestCertaintyScoreCaps(t *testing.T) {
	res := ScoreBids([]BidInput{cleanBid("A", 1000000)}, evenWeights())
	if res[0].CertaintyScore != 100 {
		t.Errorf("All bonuses sum to 140 and must cap at 100, got %f", res[0].CertaintyScore)
	}
}

func TestDepositScoreCaps(t *testing.T) {
	b := cleanBid("A", 1000000)
	b.DepositPercentage = 35 // over the 20%% benchmark
	res := ScoreBids([]BidInput{b}, evenWeights())
	if res[0].DepositScore != 100 {
		t.Errorf("Deposit above benchmark must cap at 100, got %f", res[0].DepositScore)
	}
}

func TestSpeedScore(t *testing.T) {
	// 20 days: 100 - (20-14)*2 = 88
	// 90 days: 100 - (90-14)*2 = -52 -> floored at 0
	fast := cleanBid("Fast", 1000000)
	fast.SettlementDays = 20
	slow := cleanBid("Slow", 1000000)
	slow.SettlementDays = 90

	res := ScoreBids([]BidInput{slow, fast}, evenWeights())

	var fastRes, slowRes BidResult
	for _, r := range res {
		if r.BidderName == "Fast" {
			fastRes = r
		} else {
			slowRes = r
		}
	}
	if fastRes.SpeedScore != 88 {
		t.Errorf("Expected speed 88 at 20 days, got %f", fastRes.SpeedScore)
	}
	if slowRes.SpeedScore != 0 {
		t.Errorf("Expected speed floored at 0 for 90 days, got %f", slowRes.SpeedScore)
	}
	// Identical in every other respect: the faster bid must rank higher.
	if fastRes.Rank >= slowRes.Rank {
		t.Errorf("Faster settlement must rank higher: fast=%d slow=%d", fastRes.Rank, slowRes.Rank)
	}
}

func TestVendorBenefit(t *testing.T) {
	// Bid 1,000,000, 60 days, 20% deposit, 10,000 earnest.
	// Carry cost = 1,000,000 * 60/365 * 0.05 = 8,219.18
	// No early bonus (60 > 30)
	// Access = (200,000 + 10,000) * 0.03 = 6,300
	// Benefit = 1,000,000 - 8,219.18 + 6,300 = 998,080.82
	b := cleanBid("A", 1000000)
	b.SettlementDays = 60
	b.EarnestMoney = 10000

	res := ScoreBids([]BidInput{b}, evenWeights())
	expected := 1000000 - 1000000*(60.0/365)*0.05 + (200000+10000)*0.03
	if math.Abs(res[0].VendorBenefit-expected) > 0.01 {
		t.Errorf("Expected benefit %f, got %f", expected, res[0].VendorBenefit)
	}

	// At 21 days the early settlement bonus (1%) applies.
	b.SettlementDays = 21
	res = ScoreBids([]BidInput{b}, evenWeights())
	expected = 1000000 - 1000000*(21.0/365)*0.05 + 1000000*0.01 + (200000+10000)*0.03
	if math.Abs(res[0].VendorBenefit-expected) > 0.01 {
		t.Errorf("Expected benefit with early bonus %f, got %f", expected, res[0].VendorBenefit)
	}
}

func TestPriceMonotonicity(t *testing.T) {
	low := cleanBid("Low", 900000)
	high := cleanBid("High", 1000000)

	res := ScoreBids([]BidInput{low, high}, evenWeights())

	var lowRes, highRes BidResult
	for _, r := range res {
		if r.BidderName == "Low" {
			lowRes = r
		} else {
			highRes = r
		}
	}
	if highRes.PriceScore != 100 {
		t.Errorf("Highest bid must score 100 on price, got %f", highRes.PriceScore)
	}
	if math.Abs(lowRes.PriceScore-90) > 0.0001 {
		t.Errorf("Expected price score 90, got %f", lowRes.PriceScore)
	}
	if highRes.TotalScore < lowRes.TotalScore {
		t.Error("Higher bid amount must not decrease total score, all else equal")
	}
}

func TestPriceOnlyWeightsRankByAmount(t *testing.T) {
	weights := VendorPriorityWeights{Price: 100}
	bids := []BidInput{
		cleanBid("Mid", 950000),
		cleanBid("Top", 1000000),
		cleanBid("Bottom", 850000),
	}
	res := ScoreBids(bids, weights)
	if res[0].BidderName != "Top" {
		t.Errorf("Price-only weights must rank the highest bid first, got %s", res[0].BidderName)
	}
	if res[2].BidderName != "Bottom" {
		t.Errorf("Lowest bid must rank last, got %s", res[2].BidderName)
	}
}

func TestSortIsStableAndNonIncreasing(t *testing.T) {
	// Two identical bids tie exactly; submission order must hold.
	bids := []BidInput{
		cleanBid("First", 1000000),
		cleanBid("Second", 1000000),
		cleanBid("Third", 700000),
	}
	res := ScoreBids(bids, evenWeights())

	for i := 1; i < len(res); i++ {
		if res[i].TotalScore > res[i-1].TotalScore {
			t.Errorf("Scores must be non-increasing: %f after %f", res[i].TotalScore, res[i-1].TotalScore)
		}
	}
	if res[0].BidderName != "First" || res[1].BidderName != "Second" {
		t.Errorf("Tied bids must keep submission order, got %s then %s",
			res[0].BidderName, res[1].BidderName)
	}
	if res[0].Rank != 1 || res[2].Rank != 3 {
		t.Errorf("Ranks must be assigned in order, got %d and %d", res[0].Rank, res[2].Rank)
	}
}

func TestScoreBidsEmptyBatch(t *testing.T) {
	res := ScoreBids(nil, evenWeights())
	if len(res) != 0 {
		t.Errorf("Empty batch should score to an empty slice, got %d", len(res))
	}
}
