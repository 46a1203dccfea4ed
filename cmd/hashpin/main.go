// Command hashpin generates the bcrypt hash expected by the per-user
// *_PIN_HASH environment variables. The PIN is read from the terminal
// without echo.
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

// readPin is a test seam for term.ReadPassword.
var readPin = term.ReadPassword

func main() {
	fmt.Fprint(os.Stderr, "Enter PIN: ")
	pin, err := readPin(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		log.Fatalf("reading pin: %v", err)
	}
	if len(pin) == 0 {
		log.Fatal("empty pin")
	}

	hash, err := bcrypt.GenerateFromPassword(pin, bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hashing pin: %v", err)
	}

	fmt.Println(string(hash))
}
