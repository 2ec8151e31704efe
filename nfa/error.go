package nfa

import "errors"

// ErrMalformedPostfix is returned by Compile when the postfix stream
// underflows the fragment stack, ends with more than one fragment, or is
// empty.
var ErrMalformedPostfix = errors.New("malformed postfix stream")
