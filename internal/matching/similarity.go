package matching

import "math"

// norm returns the L2 norm of a vector.
func norm(v []float32) float32 {
	var sum float64
	for _, f := range v {
		sum += float64(f) * float64(f)
	}
	return float32(math.Sqrt(sum))
}

// cosine computes cosine similarity as dot(a,b) / (aNorm * bNorm).
// aNorm is the precomputed L2 norm of vector a. A zero-length vector on
// either side yields a neutral 0.5 rather than a hard miss.
func cosine(a, b []float32, aNorm float32) float32 {
	if len(a) != len(b) {
		return 0.5
	}
	var dot float64
	var bNormSq float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		bNormSq += float64(b[i]) * float64(b[i])
	}
	bNorm := math.Sqrt(bNormSq)
	if aNorm == 0 || bNorm == 0 {
		return 0.5
	}
	return float32(dot / (float64(aNorm) * bNorm))
}
