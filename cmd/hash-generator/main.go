// Command hash-generator produces a bcrypt hash for a password given on the
// command line. Useful for seeding a privileged user directly in the store.
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator <password> [cost]")
		os.Exit(1)
	}

	password := os.Args[1]

	cost := bcrypt.DefaultCost
	if len(os.Args) > 2 {
		if _, err := fmt.Sscanf(os.Args[2], "%d", &cost); err != nil {
			fmt.Fprintf(os.Stderr, "invalid cost %q: %v\n", os.Args[2], err)
			os.Exit(1)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating hash: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(hash))
}
