package consultation

// PriceCents is the single pricing function of the platform:
//
//	total = price_per_15min / 15 * duration
//
// Every valid duration is a multiple of 15 minutes, so multiplying before
// dividing keeps the arithmetic exact in integer cents. Callers must always
// recompute through this function at persistence boundaries and never trust a
// price supplied from outside.
func PriceCents(unitPriceCents int64, d Duration) int64 {
	return unitPriceCents * int64(d) / int64(DurationQuarter)
}
