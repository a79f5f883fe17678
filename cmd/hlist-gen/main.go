// Package main provides the CLI entrypoint for hlist-gen.
//
// hlist-gen derives heterogeneous-list conversions for struct types:
// it loads Go packages through the type checker, reads each struct's
// field sequence in declaration order, and writes the FromHList,
// ToHList and IntoHList implementations next to the type.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
