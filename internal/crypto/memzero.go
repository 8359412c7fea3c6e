package crypto

import (
	"crypto/subtle"
	"runtime"

	"nem2/internal/domain"
)

// Wipe zeroes b using a constant-time copy so the write is not elided.
//
//go:noinline
func Wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
	runtime.KeepAlive(&b)
}

// WipePrivateKey zeroes an Ed25519 private key in place.
func WipePrivateKey(k *domain.Ed25519Private) {
	Wipe(k[:])
}
