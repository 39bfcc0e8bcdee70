// Package sysinfo exposes the process and host facts reported by the API.
//
// Handlers receive a Provider instead of reading globals so tests can pin
// the clock and the host identity.
package sysinfo

import (
	"os"
	"runtime"
	"time"
)

// Provider reports runtime details about the current process
type Provider struct {
	startedAt      time.Time
	now            func() time.Time
	hostname       func() (string, error)
	platform       string
	runtimeVersion string
}

// Option configures a Provider
type Option func(*Provider)

// WithClock replaces the wall clock
func WithClock(now func() time.Time) Option {
	return func(p *Provider) {
		p.now = now
	}
}

// WithStartTime overrides the instant uptime is measured from
func WithStartTime(t time.Time) Option {
	return func(p *Provider) {
		p.startedAt = t
	}
}

// WithHostname replaces the hostname lookup
func WithHostname(fn func() (string, error)) Option {
	return func(p *Provider) {
		p.hostname = fn
	}
}

// WithPlatform overrides the reported operating system
func WithPlatform(platform string) Option {
	return func(p *Provider) {
		p.platform = platform
	}
}

// WithRuntimeVersion overrides the reported runtime version
func WithRuntimeVersion(version string) Option {
	return func(p *Provider) {
		p.runtimeVersion = version
	}
}

// New creates a Provider. The start time is captured here unless
// WithStartTime is given, so it should be called once at process start.
func New(opts ...Option) *Provider {
	p := &Provider{
		now:            time.Now,
		hostname:       os.Hostname,
		platform:       runtime.GOOS,
		runtimeVersion: runtime.Version(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.startedAt.IsZero() {
		p.startedAt = p.now()
	}
	return p
}

// Now returns the current time
func (p *Provider) Now() time.Time {
	return p.now()
}

// StartedAt returns the instant the process was considered started
func (p *Provider) StartedAt() time.Time {
	return p.startedAt
}

// Uptime returns the time elapsed since start. Never negative.
func (p *Provider) Uptime() time.Duration {
	d := p.now().Sub(p.startedAt)
	if d < 0 {
		return 0
	}
	return d
}

// Hostname returns the host name reported by the kernel
func (p *Provider) Hostname() (string, error) {
	return p.hostname()
}

// Platform returns the operating system name, e.g. "linux"
func (p *Provider) Platform() string {
	return p.platform
}

// RuntimeVersion returns the version of the runtime serving requests
func (p *Provider) RuntimeVersion() string {
	return p.runtimeVersion
}
