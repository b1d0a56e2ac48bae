// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package isaac

import "testing"

func BenchmarkEngine_Uint32(b *testing.B) {
	e, err := New([]uint32{1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Uint32()
	}
}

func BenchmarkEngine_New(b *testing.B) {
	seed := make([]uint32, MaxSeedWords)
	for i := range seed {
		seed[i] = uint32(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := New(seed); err != nil {
			b.Fatal(err)
		}
	}
}
