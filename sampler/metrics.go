package sampler

// ConfigurationMetric scores a joint configuration; lower is better. Used to
// rank IK solutions when a single best candidate must be chosen.
type ConfigurationMetric[F Float] func(joints []F) float64

// NewDisplacementMetric returns a metric scoring the total squared joint
// displacement from the given reference configuration. A nil reference scores
// displacement from the zero configuration.
func NewDisplacementMetric[F Float](reference []F) ConfigurationMetric[F] {
	return func(joints []F) float64 {
		dist := 0.
		for i, j := range joints {
			d := float64(j)
			if i < len(reference) {
				d -= float64(reference[i])
			}
			dist += d * d
		}
		return dist
	}
}
