package content

import "bytes"

// printableThreshold is the minimum fraction of printable bytes a payload
// must have to be treated as text.
const printableThreshold = 0.7

// IsBinary reports whether the payload should be treated as binary rather
// than text. Any null byte classifies the payload as binary immediately.
// Otherwise the payload is binary when fewer than 70% of its bytes are
// printable ASCII (32–127) or tab, newline, or carriage return. An empty
// payload is text.
func IsBinary(data []byte) bool {
	if bytes.IndexByte(data, 0x00) >= 0 {
		return true
	}
	if len(data) == 0 {
		return false
	}
	printable := 0
	for _, b := range data {
		if (b >= 32 && b <= 127) || b == '\t' || b == '\n' || b == '\r' {
			printable++
		}
	}
	return float64(printable)/float64(len(data)) < printableThreshold
}
