// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build freebsd

package entropy

// FreeBSD's /dev/random never blocks once the kernel pool is seeded, so
// the blocking-device candidate stays eligible under the non-blocking
// policy there.
const devRandomBlocks = false
