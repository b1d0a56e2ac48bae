// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package securebytes

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test_ConfigOptions_Defaults verifies DefaultConfigOptions.
func Test_ConfigOptions_Defaults(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	cfg := DefaultConfigOptions()
	is.Equal(DefaultBits, cfg.Bits)
	is.True(cfg.Nonblocking)
	is.Nil(cfg.EntropyReader)
}

// Test_ConfigOptions_Apply verifies that each functional option sets its
// field.
func Test_ConfigOptions_Apply(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	r := bytes.NewReader(make([]byte, 16))

	cfg := DefaultConfigOptions()
	for _, opt := range []Option{
		WithBits(512),
		WithNonblocking(false),
		WithEntropyReader(r),
	} {
		opt(&cfg)
	}

	is.Equal(512, cfg.Bits)
	is.False(cfg.Nonblocking)
	is.Equal(r, cfg.EntropyReader)
}

// Test_Config_Immutable verifies the Config accessor reports construction
// parameters and that the generator satisfies the Configuration interface.
func Test_Config_Immutable(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	g, err := NewGenerator(WithBits(128))
	is.NoError(err)

	var c Configuration = g.(*generator)
	cfg := c.Config()
	is.Equal(128, cfg.Bits())
	is.True(cfg.Nonblocking())
	is.NotEmpty(cfg.Source())

	// Draws do not alter the configuration.
	g.Bytes(32)
	is.Equal(128, g.Config().Bits())
}

// Test_ValidBits verifies the power-of-two bounds check directly.
func Test_ValidBits(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	for _, bits := range []int{64, 128, 256, 512, 1024, 2048, 4096, 8192} {
		is.True(validBits(bits), "bits=%d", bits)
	}
	for _, bits := range []int{-64, 0, 1, 32, 63, 65, 96, 100, 8191, 8193, 16384} {
		is.False(validBits(bits), "bits=%d", bits)
	}
}
