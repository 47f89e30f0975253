package metrics

// MSE returns the mean squared error between two equally sized samples.
func MSE(yTrue, yPred []float64) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	return SSE(yTrue, yPred) / float64(len(yTrue))
}

// SSE returns the sum of squared errors between two equally sized samples.
func SSE(yTrue, yPred []float64) float64 {
	var sum float64
	for i := range yTrue {
		d := yTrue[i] - yPred[i]
		sum += d * d
	}
	return sum
}
