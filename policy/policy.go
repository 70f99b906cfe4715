package policy

// ReduceBase returns the on-demand base a group should be lowered to on a
// scheduled run. The result is never below minimum.
func ReduceBase(current, minimum int64) int64 {
	if minimum < 0 {
		minimum = 0
	}

	if current < minimum {
		return minimum
	}

	// ceil(1/2) is 1, so halving alone never reaches the minimum
	if current == 1 {
		return minimum
	}

	half := (current + 1) / 2
	if half < minimum {
		return minimum
	}
	return half
}

// IncreaseBase returns the on-demand base after a failed launch.
func IncreaseBase(current int64) int64 {
	if current < 0 {
		return 1
	}
	return current + 1
}
