// core/colscore/window.go
package colscore

// MovingAverage returns the simple moving average over exactly width
// consecutive values: len(vals)-width+1 outputs. Nil when the input is
// shorter than the window.
func MovingAverage(vals []float64, width int) []float64 {
	if width <= 0 || len(vals) < width {
		return nil
	}
	out := make([]float64, len(vals)-width+1)
	sum := 0.0
	for _, v := range vals[:width] {
		sum += v
	}
	out[0] = sum / float64(width)
	for i := 1; i < len(out); i++ {
		sum += vals[i+width-1] - vals[i-1]
		out[i] = sum / float64(width)
	}
	return out
}

// PadToColumns re-aligns a moving average to column indices by zero-padding:
// width/2 zeros in front, the remainder behind, so the result has
// len(avg)+width-1 entries (the original column count).
func PadToColumns(avg []float64, width int) []float64 {
	behind := width / 2
	after := width - behind - 1
	out := make([]float64, 0, len(avg)+behind+after)
	out = append(out, make([]float64, behind)...)
	out = append(out, avg...)
	out = append(out, make([]float64, after)...)
	return out
}
