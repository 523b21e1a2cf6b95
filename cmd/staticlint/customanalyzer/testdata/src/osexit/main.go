package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("exiting")
	os.Exit(1) // want "os.Exit call in function main of package main"
}
