package flexure

// selectGoverning reduces the candidate list to the governing strength.
// Candidates are declared in a fixed priority order (Yielding, FLB, WLB,
// LTB for rectangular sections; Yielding, Local Buckling for round) and
// strict comparison keeps the earliest candidate on exact ties, so the
// winning label never depends on iteration order of any map or on the
// formatting of equal floats.
func selectGoverning(res *CheckResult) {
	for _, c := range res.Candidates {
		if !c.Applicable {
			continue
		}
		if res.GoverningLimitState == "" || c.Mn < res.Mn {
			res.Mn = c.Mn
			res.GoverningLimitState = c.LimitState
		}
	}
}
