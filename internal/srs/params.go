package srs

// StartingEase is the ease factor assigned to newly created items.
const StartingEase = 2.5

// Params holds the tunable constants of the scheduling algorithm.
// The defaults follow the usual SM-2 conventions; they are placeholders
// until enough review history exists to justify tuning them.
type Params struct {
	EaseFloor   float64 // lower bound for the ease factor
	EaseCeiling float64 // upper bound for the ease factor

	FailPenalty float64 // subtracted from ease on a lapse
	HardPenalty float64 // subtracted from ease on a Hard review
	EasyBonus   float64 // added to ease on an Easy review

	HardMultiplier float64 // extra interval growth on Hard
	EasyMultiplier float64 // extra interval growth on Easy

	MinIntervalDays    int // interval floor, also the post-lapse interval
	MaxIntervalDays    int // interval ceiling, keeps due dates in range
	MatureIntervalDays int // interval at which an item counts as mature
}

// DefaultParams provides a sensible default parameter set.
func DefaultParams() *Params {
	return &Params{
		EaseFloor:          1.3,
		EaseCeiling:        5.0,
		FailPenalty:        0.2,
		HardPenalty:        0.15,
		EasyBonus:          0.15,
		HardMultiplier:     1.2,
		EasyMultiplier:     1.3,
		MinIntervalDays:    1,
		MaxIntervalDays:    36500,
		MatureIntervalDays: 21,
	}
}

// clampEase bounds an ease factor to [EaseFloor, EaseCeiling].
func (p *Params) clampEase(ease float64) float64 {
	if ease < p.EaseFloor {
		return p.EaseFloor
	}
	if ease > p.EaseCeiling {
		return p.EaseCeiling
	}
	return ease
}
