package bestand

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/guidodo/mdto/internal/checksum"
	"github.com/guidodo/mdto/internal/files/filesystem"
	"github.com/guidodo/mdto/pkg/mdto"
)

// FormatIdentifier returns the bestandsformaat data group for a file.
// *pronom.Identifier satisfies it.
type FormatIdentifier interface {
	Identify(ctx context.Context, path string) (*mdto.Entity, error)
}

// DefaultBron is the identificatieBron of generated identifiers when the
// builder has no Bron configured.
const DefaultBron = "mdto"

// Builder assembles Bestand objects.
// Builder is safe for concurrent Build calls when its dependencies are.
type Builder struct {
	FS         filesystem.FileSystemProvider
	Checksums  checksum.Calculator
	Identifier FormatIdentifier
	// Bron is the identificatieBron used when Options carries no identificatie.
	Bron   string
	Now    func() time.Time
	Logger *zap.Logger
}

// NewBuilder returns a Builder with the given dependencies. It panics on a
// nil filesystem, calculator or identifier.
func NewBuilder(fs filesystem.FileSystemProvider, checksums checksum.Calculator, identifier FormatIdentifier, logger *zap.Logger) *Builder {
	if fs == nil {
		panic("fs cannot be nil")
	}
	if checksums == nil {
		panic("checksums cannot be nil")
	}
	if identifier == nil {
		panic("identifier cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		FS:         fs,
		Checksums:  checksums,
		Identifier: identifier,
		Bron:       DefaultBron,
		Now:        time.Now,
		Logger:     logger,
	}
}

// Options describes the Bestand to build.
type Options struct {
	// Path is the file the Bestand describes.
	Path string

	// Identificatie holds the object's identifiers. When empty a
	// deterministic identifier is derived from Path.
	Identificatie []*mdto.Entity

	// RepresentatieVan references the informatieobject directly.
	RepresentatieVan *mdto.Entity

	// RepresentatieVanFile is an informatieobject document the reference is
	// detected from. Ignored when RepresentatieVan is set.
	RepresentatieVanFile string

	// URL becomes URLBestand when set.
	URL string
}

// Build inspects opts.Path and returns a validated Bestand.
func (b *Builder) Build(ctx context.Context, opts Options) (*mdto.Entity, error) {
	log := b.logger().With(zap.String("file", opts.Path))

	info, err := b.FS.Stat(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", opts.Path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", opts.Path)
	}

	verwijzing := opts.RepresentatieVan
	if verwijzing == nil && opts.RepresentatieVanFile != "" {
		verwijzing, err = b.detect(opts.RepresentatieVanFile)
		if err != nil {
			return nil, err
		}
		log.Debug("Detected informatieobject reference",
			zap.String("informatieobject", opts.RepresentatieVanFile),
			zap.String("verwijzingNaam", verwijzing.Text("verwijzingNaam")))
	}

	sum, err := b.checksum(opts.Path)
	if err != nil {
		return nil, err
	}

	size, err := omvang(info.Size())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.Path, err)
	}

	formaat, err := b.Identifier.Identify(ctx, opts.Path)
	if err != nil {
		return nil, err
	}

	obj := mdto.New(mdto.Bestand).
		Set("naam", filepath.Base(opts.Path)).
		Set("omvang", size).
		Set("bestandsformaat", formaat).
		Set("checksum", sum)

	switch len(opts.Identificatie) {
	case 0:
		obj.Set("identificatie", b.fallbackIdentificatie(opts.Path))
	case 1:
		obj.Set("identificatie", opts.Identificatie[0])
	default:
		obj.Set("identificatie", opts.Identificatie)
	}
	if verwijzing != nil {
		obj.Set("isRepresentatieVan", verwijzing)
	}
	if opts.URL != "" {
		obj.Set("URLBestand", opts.URL)
	}

	if err := mdto.Validate(obj, mdto.WithLogger(log)); err != nil {
		return nil, err
	}
	log.Debug("Built bestand", zap.Int64("omvang", info.Size()))
	return obj, nil
}

func (b *Builder) checksum(path string) (*mdto.Entity, error) {
	f, err := b.FS.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	sum, err := b.Checksums.Create(f, b.now())
	if err != nil {
		return nil, fmt.Errorf("checksum of %s: %w", path, err)
	}
	return sum, nil
}

func (b *Builder) detect(path string) (*mdto.Entity, error) {
	f, err := b.FS.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open informatieobject %s: %w", path, err)
	}
	defer f.Close()

	verwijzing, err := DetectVerwijzing(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return verwijzing, nil
}

// fallbackIdentificatie derives a stable identifier from the cleaned path,
// so rebuilding the same file yields the same kenmerk.
func (b *Builder) fallbackIdentificatie(path string) *mdto.Entity {
	kenmerk := uuid.NewSHA1(uuid.NameSpaceURL, []byte(filepath.ToSlash(filepath.Clean(path))))
	bron := b.Bron
	if bron == "" {
		bron = DefaultBron
	}
	return mdto.NewIdentificatie(kenmerk.String(), bron)
}

func (b *Builder) now() time.Time {
	if b.Now == nil {
		return time.Now()
	}
	return b.Now()
}

func (b *Builder) logger() *zap.Logger {
	if b.Logger == nil {
		return zap.NewNop()
	}
	return b.Logger
}

// omvang converts a file size to the int an omvang element holds.
func omvang(size int64) (int, error) {
	if size < 0 || size > math.MaxInt {
		return 0, fmt.Errorf("%w: file size %d does not fit omvang", mdto.ErrMalformedValue, size)
	}
	return int(size), nil
}
