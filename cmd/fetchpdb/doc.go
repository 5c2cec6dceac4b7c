// 9 Feb 2021

/*
Fetchpdb downloads mmcif entries from the protein data bank mirrors
and stores them decompressed as <code>.cif in a directory. Codes come
from the command line or, with -f, one per line from a file. Files
that are already present are not fetched again, so an interrupted
download of a long list can just be restarted.
*/
package main
