package pattern

// Remap maps v linearly from [inLo, inHi] onto [outLo, outHi]. Values outside
// the input range extrapolate; nothing is clamped.
func Remap(v, inLo, inHi, outLo, outHi float64) float64 {
	return outLo + (v-inLo)*(outHi-outLo)/(inHi-inLo)
}
