package shaders

import (
	_ "embed"
)

//go:embed voxel.wgsl
var VoxelWGSL string

//go:embed text.wgsl
var TextWGSL string
