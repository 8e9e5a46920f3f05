// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzscan

package lzscan

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	// ErrBlockTooSmall is returned when the input cannot hold a header and one flag word.
	ErrBlockTooSmall = errors.New("block too small for lzss header")
	// ErrInvalidHeader is returned when a header stream offset is out of range.
	ErrInvalidHeader = errors.New("invalid stream offsets in header")
	// ErrLiteralOverrun is returned when the literal stream is exhausted before the terminator.
	ErrLiteralOverrun = errors.New("literal stream exhausted before terminator")
	// ErrPairOverrun is returned when the pair stream is exhausted before the terminator.
	ErrPairOverrun = errors.New("pair stream exhausted before terminator")
)
