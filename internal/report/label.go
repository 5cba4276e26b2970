package report

// Label converts a positive appendix number to its bijective base-N letter
// label: 1 -> "A", 26 -> "Z", 27 -> "AA", 703 -> "AAA". There is no zero
// digit; digit values 1..base map to A onward. Returns "" for n < 1 or a
// base outside 1..26.
func Label(n, base int) string {
	if n < 1 || base < 1 || base > 26 {
		return ""
	}
	var buf []byte
	for n > 0 {
		n--
		buf = append(buf, byte('A'+n%base))
		n /= base
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}
