package site

import "github.com/google/wire"

// ProviderSet is the wire provider set for the site host
var ProviderSet = wire.NewSet(
	NewPipeline,
	NewBuilder,
	NewBuildReporter,
)
