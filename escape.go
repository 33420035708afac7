package mandelplot

// escapeRadiusSq is the squared escape radius. Once |z| > 2 the orbit of
// z <- z² + c is known to diverge.
const escapeRadiusSq = 4.0

// Escape iterates z <- z² + c from z = 0 and reports after how many
// completed iterations |z|² first exceeded 4.
//
// The magnitude is tested before each of up to maxIter steps. If it
// exceeds the threshold at step i, Escape returns (i, true) with i in
// [0, maxIter). If it never does, c is presumed to be in the set and Escape
// returns (maxIter, false). A non-positive maxIter returns (0, false).
//
// The comparison is strict: a point whose orbit lands exactly on |z|² == 4
// has not escaped.
//
// Escape is a pure function and safe for concurrent use.
func Escape(c complex128, maxIter int) (int, bool) {
	if maxIter <= 0 {
		return 0, false
	}

	cr, ci := real(c), imag(c)
	var zr, zi float64
	for i := range maxIter {
		// Explicit conversions round each product: no FMA fusion, so the
		// counts match on every architecture.
		rr := float64(zr * zr)
		ii := float64(zi * zi)
		if rr+ii > escapeRadiusSq {
			return i, true
		}
		ri := float64(zr * zi)
		zr = rr - ii + cr
		zi = ri + ri + ci
	}
	return maxIter, false
}
