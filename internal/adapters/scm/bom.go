// Package scm resolves service build versions from the release bill of
// materials.
package scm

import (
	"context"
	"os"

	"github.com/relforge/relforge/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// bomFile is the on-disk structure of the bill of materials.
type bomFile struct {
	Version  string                `yaml:"version"`
	Services map[string]bomService `yaml:"services"`
}

type bomService struct {
	Version string `yaml:"version"`
}

// BomSource implements ports.SourceManager from a BOM YAML file. The file is
// parsed once at construction; lookups are in-memory.
type BomSource struct {
	path     string
	services map[string]bomService
}

// NewBomSource loads the BOM at the given path.
func NewBomSource(path string) (*BomSource, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the release config
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBomReadFailed.Error()), "path", path)
	}

	var bom bomFile
	if err := yaml.Unmarshal(data, &bom); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBomParseFailed.Error()), "path", path)
	}

	return &BomSource{
		path:     path,
		services: bom.Services,
	}, nil
}

// ServiceBuildVersion returns the build version recorded for the
// repository's service.
func (s *BomSource) ServiceBuildVersion(_ context.Context, repo domain.Repository) (string, error) {
	svc, ok := s.services[repo.Name]
	if !ok {
		notFound := zerr.With(domain.ErrServiceNotInBom, "service", repo.Name)
		return "", zerr.With(notFound, "bom", s.path)
	}
	return svc.Version, nil
}
