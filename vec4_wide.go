//go:build (amd64 || arm64) && !purego

package shiny

import "github.com/gogpu/shiny/internal/wide"

type lanes = wide.F32x4

const backendName = wide.NameF32x4

func loadLanes(x, y, z, w float32) lanes {
	return wide.LoadF32x4(x, y, z, w)
}
