package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	clave := "dicri2026"
	if len(os.Args) > 1 {
		clave = os.Args[1]
	}
	h, err := bcrypt.GenerateFromPassword([]byte(clave), 12)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(h))
}
