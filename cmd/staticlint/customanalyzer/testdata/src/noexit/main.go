package main

import (
	"fmt"
	"os"
)

func quit() {
	os.Exit(1)
}

func main() {
	fmt.Println("not exiting directly")
}
