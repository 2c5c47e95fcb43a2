// Command partitions prints integer partition counts.
//
//	partitions <n>      number of partitions of n
//	partitions <n> <k>  number of partitions of n into exactly k parts
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
