package main

import (
	"fmt"
	"log"
	"os"

	"github.com/khoahotran/portfolio-api/pkg/auth"
)

// Prints a bcrypt hash for the given password, ready for ADMIN_PASSWORD.
func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <password>", os.Args[0])
	}

	hash, err := auth.HashPassword(os.Args[1])
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	fmt.Println(hash)
}
