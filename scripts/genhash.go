package main

import (
	"fmt"
	"os"

	"go-portfolio/pkg/auth"
)

// Prints an ADMIN_PASSWORD_HASH value for each password given.
//
//	go run ./scripts <password>...
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password>...")
		os.Exit(2)
	}

	for _, pass := range os.Args[1:] {
		hash, err := auth.HashPassword(pass)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", hash)
	}
}
