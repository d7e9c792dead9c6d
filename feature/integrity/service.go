package integrity

import (
	"context"

	"fixture-server/core/mimetypes"
	"fixture-server/core/source"

	"go.uber.org/zap"
)

// Report is the result of a fixture check.
type Report struct {
	Status string `json:"status"`
	// Total is the number of fixtures found in the source.
	Total int `json:"total"`
	// Unsupported lists fixtures whose type cannot be resolved; requests for them get 400.
	Unsupported []string `json:"unsupported"`
}

// Service handles integrity checks.
type Service struct {
	source   source.Source
	registry *mimetypes.Registry
	logger   *zap.Logger
}

// NewService creates a new integrity service.
func NewService(src source.Source, registry *mimetypes.Registry, logger *zap.Logger) *Service {
	return &Service{
		source:   src,
		registry: registry,
		logger:   logger,
	}
}

// CheckFixtures lists every fixture and reports the ones that cannot be served.
func (s *Service) CheckFixtures(ctx context.Context) (*Report, error) {
	names, err := s.source.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{Status: "checked", Total: len(names), Unsupported: []string{}}
	for _, name := range names {
		if s.registry.TypeByFilename(name) == "" {
			report.Unsupported = append(report.Unsupported, name)
		}
	}

	if len(report.Unsupported) > 0 {
		s.logger.Warn("Unsupported fixtures detected", zap.Strings("unsupported", report.Unsupported))
	}
	return report, nil
}
