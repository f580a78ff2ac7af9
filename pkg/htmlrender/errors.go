package htmlrender

import "errors"

// ErrUnresolvedReference is returned by Render instead of the default
// visible-fallback rendering when StrictRefs is enabled and a link or
// image's reference id has no matching definition.
var ErrUnresolvedReference = errors.New("unresolved reference id")
