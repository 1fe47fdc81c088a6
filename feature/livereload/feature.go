package livereload

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires live reload into the application.
type Feature struct {
	root    string
	cfg     Config
	logger  *zap.Logger
	service *Service
}

// NewFeature creates the live reload feature for the served root.
func NewFeature(root string, cfg Config, logger *zap.Logger) *Feature {
	return &Feature{
		root:   root,
		cfg:    cfg,
		logger: logger,
	}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "livereload"
}

// IsEnabled reports whether the feature should be loaded.
func (f *Feature) IsEnabled() bool {
	return f.cfg.Enabled
}

// Load starts the watcher and registers the routes.
func (f *Feature) Load(app fiber.Router) error {
	service, err := NewService(f.root, f.cfg, f.logger)
	if err != nil {
		return err
	}
	f.service = service

	NewHandler(service).RegisterRoutes(app)
	f.logger.Info("Live reload enabled", zap.String("root", f.root))
	return nil
}

// Close stops the watcher. Safe to call when Load never ran.
func (f *Feature) Close() error {
	if f.service == nil {
		return nil
	}
	return f.service.Close()
}
