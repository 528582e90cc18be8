// 18 Oct 2026

/*
Chimera makes a chimeric genome. A piece of the donor sequence replaces a
piece of the same length in the recipient sequence.

The length of the piece is the percentage of the shorter of the two
sequences, rounded down, so 50 % of a 10 and a 1000 base sequence is 5
bases. Where the piece starts in the donor and where it goes in the
recipient are chosen at random and do not depend on each other. The
result has the length of the recipient.

Each input file must hold exactly one sequence in fasta format. Files
may be gzipped. A file name of - means standard input.

Usage:

	chimera -d donor.fa -r recipient.fa -p percentage [flags]

The flags are:

	-d, --donor file
		Donor sequence. Required.
	-r, --recipient file
		Recipient sequence. Required.
	-p, --percentage p
		Percent of the shorter sequence to transfer. Must be more
		than 0 and at most 100. Required.
	-o, --out file
		Output file, output.fasta by default. - for standard output.
	-w, --width n
		Symbols per output line, 60 by default. 0 puts the whole
		sequence on one line.
	-s, --stats
		Print where the piece came from, where it went, the piece
		itself, what it replaced and a table of composition.
	--plot file.png
		Draw a picture of the splice.
	-c, --config file.yaml
		Settings for out, width, stats, plot and log_level. Anything
		on the command line wins.
	-l, --log-level level
		debug, info, warn (default) or error. Logs go to standard
		error.

The output sequence is called "Chimeric Genome" and the comment says
how much was replaced, like
	>Chimeric Genome Replaced 50.0% of donor sequence

Exit status is 0 on success, 1 if something went wrong and 2 if the
command line or config file was wrong.
*/
package main
