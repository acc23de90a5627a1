// Command apsp reads labeled directed graphs and prints their all-pairs
// shortest paths.
//
//	apsp table graphs.txt
//	apsp path graphs.txt 1 4
//	apsp edit graphs.txt --insert 3:1:7 --remove 1:2 --from 3 --to 2
//
// Input is the line-oriented format described in package reader; "-" or
// no file reads standard input.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
