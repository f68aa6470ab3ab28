//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The windowed viewer requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/abyss` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For headless rendering use ./cmd/abyssgif.")
	os.Exit(2)
}
