//go:build !(amd64 || arm64) || purego

package shiny

import "github.com/gogpu/shiny/internal/wide"

type lanes = wide.Scalar4

const backendName = wide.NameScalar4

func loadLanes(x, y, z, w float32) lanes {
	return wide.LoadScalar4(x, y, z, w)
}
