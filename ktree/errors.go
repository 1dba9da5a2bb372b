package ktree

import "errors"

// ErrKTooLarge indicates k > n was requested of GenerateKTree or a function
// built on top of it; this is an invalid-input condition and is never a
// panic.
var ErrKTooLarge = errors.New("ktree: k exceeds n")

// ErrAttemptsExceeded indicates GenerateGuaranteedTreewidth discarded
// maxAttempts samples without finding one whose MMD+ lower bound matched k.
var ErrAttemptsExceeded = errors.New("ktree: guaranteed-treewidth sampling exhausted attempts")
