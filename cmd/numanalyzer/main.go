// Package main provides the entry point for the numanalyzer CLI.
//
// numanalyzer analyzes the arithmetic and number-theoretic properties of
// numbers, either through an interactive menu or one-shot commands.
//
// Usage:
//
//	numanalyzer                 # interactive menu
//	numanalyzer analyze 28
//	numanalyzer check prime 97
//	numanalyzer primes 1 100
//	numanalyzer gcd 12 18
//
// See --help for all available options.
package main

// main is the entry point for numanalyzer.
func main() {
	Execute()
}
