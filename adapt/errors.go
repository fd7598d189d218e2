package adapt

import "errors"

// ErrAllocFailure indicates the underlying allocator could not satisfy
// an Allocate request. It is the adapter's only failure mode.
var ErrAllocFailure = errors.New("adapt: allocation failure")
