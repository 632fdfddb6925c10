package core

// Size describes pixel dimensions.
type Size struct {
	W int
	H int
}
