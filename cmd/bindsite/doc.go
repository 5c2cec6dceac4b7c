// 14 Feb 2021

/*
Bindsite computes a consensus ligand binding site from a directory of
crystal structures.

For each structure it finds the residue with the given ligand name,
takes the centroid of the ligand's atoms and collects every residue
with at least one atom within the distance cutoff of that centroid.
Waters and other solvent never count. The per-structure residue sets
are then tallied, and residues that appear in at least the coverage
fraction of the structures form the consensus site, printed in
ascending residue number order.

The report contains the number of consensus residues, a pymol script
which fetches a reference structure and shows the site as sticks, and
a chain selection expression for the Matt structure alignment program.

Structures may be in old PDB format or mmcif, plain or gzipped, mixed
freely in one directory. A structure that cannot be read or has no
copy of the ligand is skipped with a warning and does not count
towards the coverage denominator; with -strict it aborts the run
instead.

Usage:
	bindsite [flags] -l ligand structure_dir

The flags are:
	-l name
		Ligand residue name. The Biopython style "H_LIG" spelling is
		accepted and means the same as "LIG".
	-d cutoff
		Distance cutoff in Angstrom from the ligand centroid. Default 15.
	-c fraction
		Coverage cutoff in [0,1]. Default 0.5. At 0 you get every residue
		ever seen, at 1 only residues present in every structure.
	-ref code
		Structure identifier the pymol script should fetch. By default
		the first usable structure in the directory.
	-chain id
		Chain used in the Matt selection expression. Default A.
	-r n
		Number of parallel structure readers.
	-strict
		Abort on the first bad structure instead of skipping it.
	-chimera file
		Also write per-residue coverage fractions as a UCSF Chimera
		attribute file.
	-plot file
		Also write a png bar chart of coverage per residue.
	-font file
		Truetype font for the plot labels. Without it the plot has bars
		but no text.
	-log dest
		Diagnostics (skipped files, ambiguous ligand warnings) to a
		file, to "stdout", or nowhere if empty.
*/
package main
