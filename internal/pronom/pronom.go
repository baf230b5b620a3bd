// Package pronom identifies file formats against the PRONOM registry by
// running siegfried (sf) or fido.
package pronom

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/guidodo/mdto/pkg/mdto"
)

// EnvBackend selects a backend by name.
const EnvBackend = "PRONOM_BACKEND"

// Backend names a format-identification program.
type Backend string

const (
	// Auto prefers siegfried and falls back to fido.
	Auto      Backend = ""
	Siegfried Backend = "siegfried"
	Fido      Backend = "fido"
)

// program returns the executable name of the backend.
func (b Backend) program() string {
	if b == Siegfried {
		return "sf"
	}
	return string(b)
}

// ParseBackend accepts fido, siegfried, sf and the empty string.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return Auto, nil
	case "sf", "siegfried":
		return Siegfried, nil
	case "fido":
		return Fido, nil
	}
	return Auto, fmt.Errorf("%w: unknown PRONOM backend %q, valid options are fido or sf", mdto.ErrInvalidConfig, name)
}

// Identifier runs a format-identification backend on single files.
type Identifier struct {
	backend  Backend
	log      *zap.Logger
	run      Runner
	lookPath LookPathFunc
	stat     StatFunc
}

// StatFunc reports file information for a path, like os.Stat.
type StatFunc func(path string) (fs.FileInfo, error)

// Option configures an Identifier.
type Option func(*Identifier)

// WithLogger routes backend warnings to log.
func WithLogger(log *zap.Logger) Option {
	return func(id *Identifier) {
		if log != nil {
			id.log = log
		}
	}
}

// WithRunner replaces the program runner.
func WithRunner(r Runner) Option {
	return func(id *Identifier) { id.run = r }
}

// WithLookPath replaces the PATH lookup.
func WithLookPath(fn LookPathFunc) Option {
	return func(id *Identifier) { id.lookPath = fn }
}

// WithStat replaces the file check Identify runs before calling the
// backend, so the file can come from another filesystem than the OS one.
func WithStat(fn StatFunc) Option {
	return func(id *Identifier) {
		if fn != nil {
			id.stat = fn
		}
	}
}

// New returns an Identifier for backend. Auto picks siegfried when it is
// installed and fido otherwise, at the time of each call.
func New(backend Backend, opts ...Option) *Identifier {
	id := &Identifier{
		backend:  backend,
		log:      zap.NewNop(),
		run:      ExecRunner{},
		lookPath: exec.LookPath,
		stat:     os.Stat,
	}
	for _, opt := range opts {
		opt(id)
	}
	return id
}

// Resolve returns the backend Identify would use.
func (id *Identifier) Resolve() (Backend, error) {
	installed := func(b Backend) bool {
		_, err := id.lookPath(b.program())
		return err == nil
	}

	switch id.backend {
	case Siegfried, Fido:
		if !installed(id.backend) {
			return Auto, fmt.Errorf("%w: program %q (%s) not found", mdto.ErrNoBackend, id.backend.program(), id.backend)
		}
		return id.backend, nil
	case Auto:
		if installed(Siegfried) {
			return Siegfried, nil
		}
		if installed(Fido) {
			return Fido, nil
		}
		return Auto, fmt.Errorf("%w: neither fido nor sf (siegfried) is installed", mdto.ErrNoBackend)
	}
	return Auto, fmt.Errorf("%w: unknown PRONOM backend %q", mdto.ErrInvalidConfig, id.backend)
}

// Identify returns the bestandsformaat data group for the file at path:
// begripLabel is the format name, begripCode the PUID.
func (id *Identifier) Identify(ctx context.Context, path string) (*mdto.Entity, error) {
	info, err := id.stat(path)
	if err != nil {
		return nil, fmt.Errorf("file %q does not exist: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%q is not a regular file", path)
	}

	backend, err := id.Resolve()
	if err != nil {
		return nil, err
	}
	log := id.log.With(zap.String("file", path), zap.String("backend", string(backend)))
	log.Debug("Identifying file format")

	switch backend {
	case Siegfried:
		stdout, _, err := id.run.Run(ctx, "sf", "--json", "--sym", path)
		if err != nil {
			return nil, fmt.Errorf("sf failed on %s: %w", path, err)
		}
		return parseSiegfried(stdout, path, log)
	default:
		stdout, stderr, err := id.run.Run(ctx, "fido",
			"-q",
			"-matchprintf", "OK,%(info.formatname)s,%(info.puid)s,\n",
			"-nomatchprintf", "FAIL",
			path)
		if err != nil {
			return nil, fmt.Errorf("fido failed on %s: %w", path, err)
		}
		return parseFido(stdout, stderr, path, log)
	}
}

func formaat(label, puid string) *mdto.Entity {
	return mdto.NewBegrip(label, mdto.NewVerwijzing(mdto.PronomRegister, nil), puid)
}
