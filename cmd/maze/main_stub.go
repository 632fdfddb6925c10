//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of mazegen requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/maze` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a terminal rendition use `go run ./cmd/maze-text`.")
	os.Exit(2)
}
