package falcon

import "errors"

// Decode-time failure classes. Verification itself never returns an error:
// a signature that fails to verify is simply rejected.
var (
	// ErrBlobLength reports a byte blob of the wrong length.
	ErrBlobLength = errors.New("falcon: malformed blob length")
	// ErrPublicKeyEncoding reports a public key blob with a bad header
	// or an out-of-range coefficient.
	ErrPublicKeyEncoding = errors.New("falcon: invalid public key encoding")
	// ErrSignatureEncoding reports a signature blob with a bad header or
	// a malformed compressed stream.
	ErrSignatureEncoding = errors.New("falcon: invalid signature encoding")
)
