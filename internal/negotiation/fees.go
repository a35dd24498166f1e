package negotiation

// FeeRate is the flat platform fee applied on both sides of a trade.
// A buyer pays the quoted price plus the fee; a seller receives the
// quoted price minus it.
const FeeRate = 0.02

// BuyerPays converts a quoted per-unit price into the amount a buyer
// actually pays. Callers must pass quoted > 0; no internal validation.
func BuyerPays(quoted float64) float64 {
	return quoted * (1 + FeeRate)
}

// SellerGets converts a quoted per-unit price into the amount a seller
// actually receives. Callers must pass quoted > 0; no internal
// validation.
func SellerGets(quoted float64) float64 {
	return quoted * (1 - FeeRate)
}
