package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gstbill/internal/domain"
	"gstbill/internal/port"
	"gstbill/internal/validator"
)

const (
	systemTemplatesCacheKey = "templates:system"
	builtinTemplateName     = "Standard"
	defaultColorHex         = "#1F2937"
)

// AssignTemplateInput selects a system template and an accent color.
type AssignTemplateInput struct {
	TemplateID uuid.UUID `json:"template_id"`
	ColorHex   string    `json:"color_hex"`
}

// CreateTemplateInput is the DTO for creating a custom template.
// A nil Config starts from the default layout.
type CreateTemplateInput struct {
	Name      string                 `json:"name"`
	Config    *domain.TemplateConfig `json:"config"`
	IsDefault bool                   `json:"is_default"`
}

// UpdateTemplateInput is the DTO for updating a custom template.
type UpdateTemplateInput struct {
	Name      *string                `json:"name"`
	Config    *domain.TemplateConfig `json:"config"`
	IsDefault *bool                  `json:"is_default"`
}

// TemplateService manages the system catalog, the business's selection and
// business-defined templates.
type TemplateService interface {
	ListSystemTemplates(ctx context.Context) ([]domain.PredefinedTemplate, error)
	AssignSystemTemplate(ctx context.Context, businessID uuid.UUID, input AssignTemplateInput) (*domain.BusinessTemplateSettings, error)
	GetSystemTemplateSettings(ctx context.Context, businessID uuid.UUID) (*domain.BusinessTemplateSettings, error)

	Create(ctx context.Context, businessID uuid.UUID, input CreateTemplateInput) (*domain.InvoiceTemplate, error)
	GetByID(ctx context.Context, businessID, templateID uuid.UUID) (*domain.InvoiceTemplate, error)
	GetDefault(ctx context.Context, businessID uuid.UUID) (*domain.InvoiceTemplate, error)
	List(ctx context.Context, businessID uuid.UUID) ([]domain.InvoiceTemplate, error)
	Update(ctx context.Context, businessID, templateID uuid.UUID, input UpdateTemplateInput) (*domain.InvoiceTemplate, error)
	Delete(ctx context.Context, businessID, templateID uuid.UUID) error

	// Resolve picks the layout for an invoice: its own template, then the
	// business default, then the assigned system template, then the builtin.
	Resolve(ctx context.Context, businessID uuid.UUID, templateID *uuid.UUID) (*domain.EffectiveTemplate, error)
}

type templateService struct {
	predefined port.PredefinedTemplateRepository
	settings   port.TemplateSettingsRepository
	templates  port.InvoiceTemplateRepository
	cache      port.Cache
	cacheTTL   time.Duration
	log        *zap.Logger
}

// NewTemplateService creates a new TemplateService implementation.
func NewTemplateService(
	predefined port.PredefinedTemplateRepository,
	settings port.TemplateSettingsRepository,
	templates port.InvoiceTemplateRepository,
	cache port.Cache,
	cacheTTL time.Duration,
	log *zap.Logger,
) TemplateService {
	return &templateService{
		predefined: predefined,
		settings:   settings,
		templates:  templates,
		cache:      cache,
		cacheTTL:   cacheTTL,
		log:        log,
	}
}

// ListSystemTemplates serves the catalog from cache when possible. Cache
// failures are logged and fall through to the database.
func (s *templateService) ListSystemTemplates(ctx context.Context) ([]domain.PredefinedTemplate, error) {
	if raw, found, err := s.cache.Get(ctx, systemTemplatesCacheKey); err != nil {
		s.log.Warn("template cache read failed", zap.Error(err))
	} else if found {
		var cached []domain.PredefinedTemplate
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		s.log.Warn("template cache entry corrupt, reloading")
	}

	list, err := s.predefined.List(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(list); err == nil {
		if err := s.cache.Set(ctx, systemTemplatesCacheKey, raw, s.cacheTTL); err != nil {
			s.log.Warn("template cache write failed", zap.Error(err))
		}
	}
	return list, nil
}

func (s *templateService) AssignSystemTemplate(ctx context.Context, businessID uuid.UUID, input AssignTemplateInput) (*domain.BusinessTemplateSettings, error) {
	color := strings.TrimSpace(input.ColorHex)
	if color == "" {
		color = defaultColorHex
	}
	if !validator.ValidColorHex(color) {
		return nil, domain.NewValidationError([]domain.FieldViolation{
			{Field: "color_hex", Message: "must be a #RRGGBB color"},
		})
	}

	if _, err := s.predefined.GetByID(ctx, input.TemplateID); err != nil {
		return nil, err
	}

	current, err := s.settings.GetByBusiness(ctx, businessID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	isNewSelection := current == nil || current.TemplateID != input.TemplateID

	settings := &domain.BusinessTemplateSettings{
		BusinessID: businessID,
		TemplateID: input.TemplateID,
		ColorHex:   strings.ToUpper(color),
	}
	if err := s.settings.Upsert(ctx, settings); err != nil {
		return nil, err
	}

	if isNewSelection {
		if err := s.predefined.IncrementUsage(ctx, input.TemplateID); err != nil {
			return nil, err
		}
		if err := s.cache.Delete(ctx, systemTemplatesCacheKey); err != nil {
			s.log.Warn("template cache invalidation failed", zap.Error(err))
		}
	}

	s.log.Info("system template assigned",
		zap.String("business_id", businessID.String()),
		zap.String("template_id", input.TemplateID.String()),
		zap.Bool("new_selection", isNewSelection),
	)
	return settings, nil
}

func (s *templateService) GetSystemTemplateSettings(ctx context.Context, businessID uuid.UUID) (*domain.BusinessTemplateSettings, error) {
	settings, err := s.settings.GetByBusiness(ctx, businessID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrTemplateNotFound
	}
	return settings, err
}

func (s *templateService) Create(ctx context.Context, businessID uuid.UUID, input CreateTemplateInput) (*domain.InvoiceTemplate, error) {
	cfg := domain.DefaultTemplateConfig()
	if input.Config != nil {
		cfg = *input.Config
	}
	tmpl := &domain.InvoiceTemplate{
		BusinessID: businessID,
		Name:       strings.TrimSpace(input.Name),
		Config:     cfg,
		IsDefault:  input.IsDefault,
	}
	if err := validator.ValidateTemplate(tmpl); err != nil {
		return nil, err
	}

	if tmpl.IsDefault {
		if err := s.templates.UnsetDefault(ctx, businessID, uuid.Nil); err != nil {
			return nil, err
		}
	}
	if err := s.templates.Create(ctx, tmpl); err != nil {
		return nil, err
	}
	return tmpl, nil
}

func (s *templateService) GetByID(ctx context.Context, businessID, templateID uuid.UUID) (*domain.InvoiceTemplate, error) {
	return s.templates.GetByID(ctx, businessID, templateID)
}

func (s *templateService) GetDefault(ctx context.Context, businessID uuid.UUID) (*domain.InvoiceTemplate, error) {
	return s.templates.GetDefault(ctx, businessID)
}

func (s *templateService) List(ctx context.Context, businessID uuid.UUID) ([]domain.InvoiceTemplate, error) {
	return s.templates.List(ctx, businessID)
}

func (s *templateService) Update(ctx context.Context, businessID, templateID uuid.UUID, input UpdateTemplateInput) (*domain.InvoiceTemplate, error) {
	tmpl, err := s.templates.GetByID(ctx, businessID, templateID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		tmpl.Name = strings.TrimSpace(*input.Name)
	}
	if input.Config != nil {
		tmpl.Config = *input.Config
	}
	if input.IsDefault != nil {
		tmpl.IsDefault = *input.IsDefault
	}
	if err := validator.ValidateTemplate(tmpl); err != nil {
		return nil, err
	}

	if tmpl.IsDefault {
		if err := s.templates.UnsetDefault(ctx, businessID, tmpl.ID); err != nil {
			return nil, err
		}
	}
	if err := s.templates.Update(ctx, tmpl); err != nil {
		return nil, err
	}
	return tmpl, nil
}

func (s *templateService) Delete(ctx context.Context, businessID, templateID uuid.UUID) error {
	return s.templates.Delete(ctx, businessID, templateID)
}

func (s *templateService) Resolve(ctx context.Context, businessID uuid.UUID, templateID *uuid.UUID) (*domain.EffectiveTemplate, error) {
	if templateID != nil {
		tmpl, err := s.templates.GetByID(ctx, businessID, *templateID)
		switch {
		case err == nil:
			return customEffective(tmpl, domain.TemplateSourceInvoice), nil
		case !errors.Is(err, domain.ErrTemplateNotFound):
			return nil, err
		}
	}

	tmpl, err := s.templates.GetDefault(ctx, businessID)
	switch {
	case err == nil:
		return customEffective(tmpl, domain.TemplateSourceDefault), nil
	case !errors.Is(err, domain.ErrTemplateNotFound):
		return nil, err
	}

	settings, err := s.settings.GetByBusiness(ctx, businessID)
	switch {
	case err == nil:
		sys, err := s.predefined.GetByID(ctx, settings.TemplateID)
		if err == nil {
			id := sys.ID
			return &domain.EffectiveTemplate{
				Source:          domain.TemplateSourceSystem,
				TemplateID:      &id,
				Name:            sys.Name,
				PreviewImageURL: sys.PreviewImageURL,
				ColorHex:        settings.ColorHex,
				Config:          domain.DefaultTemplateConfig(),
			}, nil
		}
		if !errors.Is(err, domain.ErrTemplateNotFound) {
			return nil, err
		}
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	return &domain.EffectiveTemplate{
		Source:   domain.TemplateSourceBuiltin,
		Name:     builtinTemplateName,
		ColorHex: defaultColorHex,
		Config:   domain.DefaultTemplateConfig(),
	}, nil
}

func customEffective(tmpl *domain.InvoiceTemplate, source string) *domain.EffectiveTemplate {
	id := tmpl.ID
	color := tmpl.Config.AccentColor
	if color == "" {
		color = defaultColorHex
	}
	return &domain.EffectiveTemplate{
		Source:     source,
		TemplateID: &id,
		Name:       tmpl.Name,
		ColorHex:   color,
		Config:     tmpl.Config,
	}
}
