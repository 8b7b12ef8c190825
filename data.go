package ethiomorph

import (
	"embed"
	"io/fs"
)

//go:embed data/*.json
var embedded embed.FS

// DefaultData returns the data set compiled into the binary.
func DefaultData() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// "data" is a literal embedded directory.
		panic(err)
	}
	return sub
}
