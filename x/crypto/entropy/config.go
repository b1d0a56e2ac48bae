// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.
//
// Package entropy provides configuration types and functional options for
// platform entropy source selection.

package entropy

// DefaultEGDPaths lists the unix-domain socket locations probed for an
// EGD-style entropy daemon, in order.
var DefaultEGDPaths = []string{
	"/var/run/egd-pool",
	"/dev/egd-pool",
	"/etc/egd-pool",
	"/etc/entropy",
}

// Default device paths for the filesystem randomness candidates.
const (
	DefaultNonblockingDevice = "/dev/urandom"
	DefaultBlockingDevice    = "/dev/random"
)

// ConfigOptions holds the configurable options for a Provider. It is used
// with the functional options pattern.
//
// Fields:
//   - Nonblocking: skip sources classified as blocking (default true).
//   - OSRandom: include the crypto/rand candidate (default true).
//   - EGDPaths: unix-domain socket paths probed for an entropy daemon.
//   - NonblockingDevice: path of the non-blocking random device; empty
//     removes the candidate.
//   - BlockingDevice: path of the blocking random device; empty removes
//     the candidate.
type ConfigOptions struct {
	// EGDPaths are the unix-domain socket paths probed for an EGD-style
	// entropy daemon. Defaults to DefaultEGDPaths.
	EGDPaths []string

	// NonblockingDevice is the filesystem device yielding non-blocking
	// randomness. Defaults to /dev/urandom.
	NonblockingDevice string

	// BlockingDevice is the filesystem device yielding blocking
	// randomness. Defaults to /dev/random.
	BlockingDevice string

	// Nonblocking, when true, skips sources classified as blocking.
	// Defaults to true.
	Nonblocking bool

	// OSRandom, when true, includes the operating system's cryptographic
	// randomness API as the first candidate. Defaults to true.
	OSRandom bool
}

// DefaultConfigOptions returns the default candidate configuration: the OS
// API first, the documented EGD socket locations, then /dev/urandom and
// /dev/random, with blocking sources filtered out.
func DefaultConfigOptions() ConfigOptions {
	return ConfigOptions{
		EGDPaths:          DefaultEGDPaths,
		NonblockingDevice: DefaultNonblockingDevice,
		BlockingDevice:    DefaultBlockingDevice,
		Nonblocking:       true,
		OSRandom:          true,
	}
}

// Option defines a functional option for customizing a ConfigOptions.
type Option func(*ConfigOptions)

// WithNonblocking controls whether blocking-classified sources are
// eligible. Passing false admits the EGD and blocking-device candidates.
func WithNonblocking(nonblocking bool) Option {
	return func(c *ConfigOptions) {
		c.Nonblocking = nonblocking
	}
}

// WithOSRandom controls whether the operating system's cryptographic
// randomness API participates as the first candidate.
func WithOSRandom(enable bool) Option {
	return func(c *ConfigOptions) {
		c.OSRandom = enable
	}
}

// WithEGDPaths replaces the unix-domain socket paths probed for an
// EGD-style entropy daemon.
func WithEGDPaths(paths ...string) Option {
	return func(c *ConfigOptions) {
		c.EGDPaths = paths
	}
}

// WithNonblockingDevice replaces the non-blocking device path. An empty
// path removes the candidate.
func WithNonblockingDevice(path string) Option {
	return func(c *ConfigOptions) {
		c.NonblockingDevice = path
	}
}

// WithBlockingDevice replaces the blocking device path. An empty path
// removes the candidate.
func WithBlockingDevice(path string) Option {
	return func(c *ConfigOptions) {
		c.BlockingDevice = path
	}
}
