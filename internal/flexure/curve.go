package flexure

// CapacityCurve samples the governing nominal strength over unbraced
// lengths from zero to maxLb, holding every other member property fixed.
// This is the data behind the available-moment vs unbraced-length plot.
func (c *Checker) CapacityCurve(m RectangularMember, maxLb float64, n int) (lbs, mns []float64, err error) {
	if n < 2 {
		n = 2
	}

	lbs = make([]float64, n)
	mns = make([]float64, n)

	step := maxLb / float64(n-1)
	for i := 0; i < n; i++ {
		point := m
		point.Lb = step * float64(i)

		res, err := c.CheckRectangular(&point)
		if err != nil {
			return nil, nil, err
		}

		lbs[i] = point.Lb
		mns[i] = res.Mn
	}

	return lbs, mns, nil
}
