package pronom

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/guidodo/mdto/pkg/mdto"
)

type sfReport struct {
	Files []sfFile `json:"files"`
}

type sfFile struct {
	Filename string    `json:"filename"`
	Errors   string    `json:"errors"`
	Matches  []sfMatch `json:"matches"`
}

type sfMatch struct {
	NS      string `json:"ns"`
	ID      string `json:"id"`
	Format  string `json:"format"`
	Warning string `json:"warning"`
}

// parseSiegfried reads `sf --json` output for a single file.
func parseSiegfried(out []byte, path string, log *zap.Logger) (*mdto.Entity, error) {
	var report sfReport
	if err := json.Unmarshal(out, &report); err != nil {
		return nil, fmt.Errorf("failed to parse sf output for %s: %w", path, err)
	}
	if len(report.Files) == 0 {
		return nil, fmt.Errorf("%w: sf reported no files for %s", mdto.ErrIdentification, path)
	}
	file := report.Files[0]

	if strings.Contains(file.Errors, "empty") {
		log.Warn("File appears to be empty")
	}
	if len(file.Matches) == 0 {
		return nil, fmt.Errorf("%w: siegfried returned no match for %s", mdto.ErrIdentification, path)
	}
	if len(file.Matches) > 1 {
		log.Warn("siegfried returned more than one PRONOM match, selecting the first one",
			zap.Int("matches", len(file.Matches)))
	}

	match := file.Matches[0]
	if match.ID == "UNKNOWN" {
		return nil, fmt.Errorf("%w: siegfried failed to detect PRONOM information about %s", mdto.ErrIdentification, path)
	}
	if match.Warning != "" {
		log.Warn("siegfried reports a PRONOM warning", zap.String("warning", match.Warning))
	}
	return formaat(match.Format, match.ID), nil
}

// parseFido reads fido output produced with
// -matchprintf "OK,<formatname>,<puid>,\n" -nomatchprintf FAIL.
func parseFido(stdout, stderr []byte, path string, log *zap.Logger) (*mdto.Entity, error) {
	if strings.Contains(strings.ToLower(string(stderr)), "(empty)") {
		log.Warn("File appears to be empty")
	}

	out := string(stdout)
	if !strings.HasPrefix(out, "OK") {
		return nil, fmt.Errorf("%w: fido PRONOM detection failed on %s", mdto.ErrIdentification, path)
	}

	lines := strings.Split(strings.TrimRight(out, "\r\n"), "\n")
	if len(lines) > 1 {
		log.Warn("fido returned more than one PRONOM match, selecting the first one",
			zap.Int("matches", len(lines)))
	}

	// Format names may contain commas; the PUID is the last field.
	fields := strings.Split(strings.TrimSuffix(strings.TrimRight(lines[0], "\r"), ","), ",")
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: unexpected fido output %q for %s", mdto.ErrIdentification, lines[0], path)
	}
	puid := fields[len(fields)-1]
	label := strings.Join(fields[1:len(fields)-1], ",")
	return formaat(label, puid), nil
}
