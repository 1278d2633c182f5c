// Package buildinfo exposes version information of the rodent binaries.
//
// Release builds inject values via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/rodent-go/internal/infra/buildinfo.Version=v1.0.0 \
//	    -X github.com/yndnr/rodent-go/internal/infra/buildinfo.Commit=abc123"
//
// Without ldflags, Get falls back to the VCS stamp the Go toolchain embeds.
package buildinfo
