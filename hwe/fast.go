package hwe

// Fast uses the chi square approximation, and only when that P value falls
// below cutoff does it compute and return the exact P value instead.
func (c GenotypeCounts) Fast(cutoff float64) float64 {
	if p := c.Approximate(); p >= cutoff {
		return p
	}

	return c.Exact()
}
