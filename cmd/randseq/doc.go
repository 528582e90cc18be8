// 31 July 2020

/*
Randseq makes random sequences for testing the code.
Usage:

	randseq [flags] fname length

will generate sequences of the given length and write them to fname.
If fname is -, they go to standard output. A donor and recipient for
chimera can be made with

	randseq -c donor donor.fa 5000
	randseq -c recipient -r 2 recipient.fa 8000

Flags:

	-n nseq
		number of sequences, 1 by default
	-c comment
		comment line for each sequence, followed by its number
	-r seed
		random number seed
	-w width
		symbols per line, 0 for one line
	-m
		messy output, with spaces and newlines scattered through the
		sequences
	-P
		protein instead of DNA

We are most interested in testing and benchmarking the reader, so the
content is not so important. Whitespace should be unpredictable, so -m
generates funny cases.
*/
package main
