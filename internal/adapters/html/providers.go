package html

import (
	"github.com/google/wire"
	"github.com/philly/arch-blog/postpage/internal/posts/ports"
)

// ProviderSet is the wire provider set for HTML rendering
var ProviderSet = wire.NewSet(
	NewPostRenderer,
	wire.Bind(new(ports.PostRenderer), new(*PostRenderer)),
	NewDocument,
)
