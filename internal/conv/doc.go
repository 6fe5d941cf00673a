// Package conv converts record counts to the uint32 positions held by
// index.PositionSet, rejecting values the narrower type cannot hold.
package conv
