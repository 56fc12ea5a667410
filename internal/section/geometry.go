package section

import "math"

// DeriveProperties computes the section properties of a rectangular
// HSS/box section by subtracting the inner rectangle from the outer one.
// The torsional constant uses the thin-walled mid-line approximation
// J = 4·Am²·t / Pm.
func (s BoxSection) DeriveProperties() (*BoxProperties, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	t := s.DesignThickness()
	bi := s.B - 2*t // inner width
	hi := s.H - 2*t // inner depth

	props := &BoxProperties{
		T:          t,
		ClearWidth: s.B - 3*t,
		ClearDepth: s.H - 3*t,
	}

	props.Ag = s.B*s.H - bi*hi

	props.Ix = (s.B*math.Pow(s.H, 3))/12 - (bi*math.Pow(hi, 3))/12
	props.Iy = (s.H*math.Pow(s.B, 3))/12 - (hi*math.Pow(bi, 3))/12
	props.Sx = props.Ix / (s.H / 2)
	props.Zx = (s.B*s.H*s.H)/4 - (bi*hi*hi)/4

	props.Ry = math.Sqrt(props.Iy / props.Ag)

	// Mid-line enclosed area and perimeter
	am := (s.B - t) * (s.H - t)
	pm := 2 * ((s.B - t) + (s.H - t))
	props.J = 4 * am * am * t / pm

	return props, nil
}

// DeriveProperties computes the section properties of a round HSS from
// its outside diameter and wall thickness.
func (s RoundSection) DeriveProperties() (*RoundProperties, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	di := s.D - 2*s.T // inner diameter

	props := &RoundProperties{}
	props.A = math.Pi / 4 * (s.D*s.D - di*di)
	props.I = math.Pi / 64 * (math.Pow(s.D, 4) - math.Pow(di, 4))
	props.S = props.I / (s.D / 2)
	props.Z = (math.Pow(s.D, 3) - math.Pow(di, 3)) / 6

	return props, nil
}
