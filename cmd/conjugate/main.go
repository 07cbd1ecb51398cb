// Command conjugate prints vocalized Arabic verb forms.
//
//	conjugate form ك-ت-ب perfect 3fs --context au
//	conjugate table ر-ب-ط --dialect lebanese --context au
//	conjugate participle ع-م-ل --stem X --passive
//	conjugate nouns ق-ت-ل --stem 3
//	conjugate dialects
//	conjugate catalog --check
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
