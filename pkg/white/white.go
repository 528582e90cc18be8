// Package white strips white space out of sequence data.
// The FASTA reader calls it on every sequence line.
package white

import "bytes"

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// Remove acts on a byte slice, in place and removes all the white
// space. The length is adjusted, but the capacity is unchanged.
func Remove(s *[]byte) {
	t := *s
	n := 0
	for _, c := range t {
		if !asciiSpace[c] {
			t[n] = c
			n++
		}
	}
	*s = t[:n]
}

// RemoveByFields does the same as Remove, but lets the library split
// the slice. It allocates, so it is only here for comparison.
func RemoveByFields(s *[]byte) {
	*s = bytes.Join(bytes.Fields(*s), nil)
}
