package sh

import "gonum.org/v1/gonum/spatial/r3"

// EvalDirection writes the basis functions of the given order evaluated at
// dir into dst. dir must be unit length; it is not normalized here.
func EvalDirection(dst []float64, order int, dir r3.Vec) error {
	if err := checkBuffers(order, dst); err != nil {
		return err
	}
	evalBasis(dst, order, dir.X, dir.Y, dir.Z)
	return nil
}

// evalBasis fills out band by band. Zonal terms for l >= 3 come from the
// three-term recurrence in z; the m != 0 terms are associated Legendre
// polynomials in z times cos/sin multiples built by complex multiplication in
// the xy plane (the sin^m factor lives in those multiples).
func evalBasis(out []float64, order int, x, y, z float64) {
	z2 := z * z

	// band 0, 1
	out[0] = 0.28209479177387814
	out[2] = 0.4886025119029199 * z
	c1, s1 := x, y
	t := -0.4886025119029199
	out[3] = t * c1
	out[1] = t * s1
	if order == 2 {
		return
	}

	// band 2
	out[6] = 0.94617469575756*z2 - 0.31539156525252
	t = -1.0925484305920792 * z
	out[7] = t * c1
	out[5] = t * s1
	c2 := x*c1 - y*s1
	s2 := x*s1 + y*c1
	t = 0.5462742152960396
	out[8] = t * c2
	out[4] = t * s2
	if order == 3 {
		return
	}

	// band 3
	out[12] = 1.9720265943665387*z*out[6] - 1.0183501544346312*out[2]
	t = -2.2852289973223288*z2 + 0.4570457994644657
	out[13] = t * c1
	out[11] = t * s1
	t = 1.4453057213202771 * z
	out[14] = t * c2
	out[10] = t * s2
	c3 := x*c2 - y*s2
	s3 := x*s2 + y*c2
	t = -0.5900435899266435
	out[15] = t * c3
	out[9] = t * s3
	if order == 4 {
		return
	}

	// band 4
	out[20] = 1.984313483298443*z*out[12] - 1.0062305898749053*out[6]
	t = z * (-4.683325804901024*z2 + 2.0071396306718676)
	out[21] = t * c1
	out[19] = t * s1
	t = 3.3116114351514603*z2 - 0.47308734787878
	out[22] = t * c2
	out[18] = t * s2
	t = -1.7701307697799304 * z
	out[23] = t * c3
	out[17] = t * s3
	c4 := x*c3 - y*s3
	s4 := x*s3 + y*c3
	t = 0.6258357354491761
	out[24] = t * c4
	out[16] = t * s4
	if order == 5 {
		return
	}

	// band 5
	out[30] = 1.98997487421324*z*out[20] - 1.002853072844814*out[12]
	t = (-9.511879675109636*z2+6.341253116739757)*z2 - 0.45294665119569694
	out[31] = t * c1
	out[29] = t * s1
	t = z * (7.190305177459986*z2 - 2.396768392486662)
	out[32] = t * c2
	out[28] = t * s2
	t = -4.403144694917254*z2 + 0.4892382994352504
	out[33] = t * c3
	out[27] = t * s3
	t = 2.075662314881041 * z
	out[34] = t * c4
	out[26] = t * s4
	c5 := x*c4 - y*s4
	s5 := x*s4 + y*c4
	t = -0.6563820568401701
	out[35] = t * c5
	out[25] = t * s5
}
