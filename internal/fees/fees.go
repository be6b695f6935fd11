package fees

// MarketplacePolicy holds the admin-fee table for marketplace escrow
// orders. Competitor sellers pay a tiered fee, everyone else pays the
// flat minimum. Thresholds are admin-configurable; zero values fall back
// to the defaults via Normalize.
type MarketplacePolicy struct {
	FlatFee       int64 `json:"flatFee"`
	Tier2Min      int64 `json:"tier2Min"`
	Tier2Fee      int64 `json:"tier2Fee"`
	Tier3Min      int64 `json:"tier3Min"`
	PercentDiv    int64 `json:"percentDiv"`
	PercentFeeCap int64 `json:"percentFeeCap"`
}

func DefaultMarketplacePolicy() MarketplacePolicy {
	return MarketplacePolicy{
		FlatFee:       2000,
		Tier2Min:      50000,
		Tier2Fee:      5000,
		Tier3Min:      250000,
		PercentDiv:    100,
		PercentFeeCap: 20000,
	}
}

// Normalize replaces unset fields with the default table so a partially
// configured policy row never produces a zero divisor or zero fee.
func (p MarketplacePolicy) Normalize() MarketplacePolicy {
	def := DefaultMarketplacePolicy()
	if p.FlatFee <= 0 {
		p.FlatFee = def.FlatFee
	}
	if p.Tier2Min <= 0 {
		p.Tier2Min = def.Tier2Min
	}
	if p.Tier2Fee <= 0 {
		p.Tier2Fee = def.Tier2Fee
	}
	if p.Tier3Min <= 0 {
		p.Tier3Min = def.Tier3Min
	}
	if p.PercentDiv <= 0 {
		p.PercentDiv = def.PercentDiv
	}
	if p.PercentFeeCap <= 0 {
		p.PercentFeeCap = def.PercentFeeCap
	}
	return p
}

// Fee returns the admin fee for a seller's net order amount.
// Non-competitor sellers always pay the flat fee, including on zero or
// negative nets: a voucher that exhausts an order still carries the
// minimum fee. Competitor sellers pay by tier:
//
//	net < Tier2Min           -> FlatFee
//	Tier2Min <= net <= Tier3Min -> Tier2Fee
//	net > Tier3Min           -> min(net/PercentDiv, PercentFeeCap)
func (p MarketplacePolicy) Fee(net int64, isCompetitor bool) int64 {
	p = p.Normalize()
	if !isCompetitor {
		return p.FlatFee
	}
	switch {
	case net < p.Tier2Min:
		return p.FlatFee
	case net <= p.Tier3Min:
		return p.Tier2Fee
	default:
		fee := net / p.PercentDiv
		if fee > p.PercentFeeCap {
			fee = p.PercentFeeCap
		}
		return fee
	}
}

// TripPolicy is the admin-fee table for delivery-trip orders. It is a
// separate product domain with its own table and must not be folded into
// MarketplacePolicy.
type TripPolicy struct {
	Threshold int64 `json:"threshold"`
	LowFee    int64 `json:"lowFee"`
	HighFee   int64 `json:"highFee"`
}

func DefaultTripPolicy() TripPolicy {
	return TripPolicy{Threshold: 15000, LowFee: 500, HighFee: 2000}
}

func (p TripPolicy) Fee(amount int64) int64 {
	if p.Threshold <= 0 {
		p = DefaultTripPolicy()
	}
	if amount < p.Threshold {
		return p.LowFee
	}
	return p.HighFee
}
