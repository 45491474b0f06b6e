package domain

import "errors"

// ErrNotFound signals that a requested entity does not exist.
var ErrNotFound = errors.New("domain: not found")

// ErrInvalidSeed signals a malformed (empty or blank) seed track
// identifier. This is a caller bug, not a data condition, and is the only
// input the recommendation entrypoint rejects with an error.
var ErrInvalidSeed = errors.New("domain: invalid seed track id")

// ErrNoSeedFeatures signals that no feature vector could be obtained for
// the seed track by any method. Ranking must not proceed without it.
var ErrNoSeedFeatures = errors.New("domain: no features available for seed track")

// ErrInsufficientData signals that fewer than two usable feature rows
// exist, so nearest-neighbor ranking has nothing to compare.
var ErrInsufficientData = errors.New("domain: not enough feature rows to rank")
