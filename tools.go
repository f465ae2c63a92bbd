//go:build tools

// Development tools pinned in go.mod. Nothing here is linked into the
// nettree binary; run them with `go run`.

package nettree

import (
	_ "golang.org/x/tools/cmd/goimports"
)
