package salary

// computeExcess derives the threshold-overage signal for one employee.
// When any advance or salary payment exists for the period anywhere in
// the track (globalPayouts), the excess bases on the remaining amount
// after that employee's own advances and salary payments; otherwise on
// the net result directly. The value is informational and never feeds
// back into other totals.
func computeExcess(netResult, advances, salaries, threshold float64, globalPayouts bool) float64 {
	base := netResult
	if globalPayouts {
		base = netResult - advances - salaries
	}
	if base > threshold {
		return base - threshold
	}
	return 0
}
