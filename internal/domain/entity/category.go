package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/codeflix/catalog/internal/domain"
	"github.com/google/uuid"
)

// Límites de longitud, medidos en caracteres tras recortar espacios.
const (
	CategoryNameMinLength        = 3
	CategoryNameMaxLength        = 255
	CategoryDescriptionMaxLength = 10_000
)

// Reglas de validación de Category, en el orden en que se evalúan.
// Son referencias para errors.Is: las operaciones devuelven copias, nunca estos valores.
var (
	ErrCategoryNameEmpty          = domain.NewValidationError("name", "Name should not be empty or null")
	ErrCategoryNameTooShort       = domain.NewValidationError("name", "Name should have at least 3 characters")
	ErrCategoryNameTooLong        = domain.NewValidationError("name", "Name should have at most 255 characters")
	ErrCategoryDescriptionEmpty   = domain.NewValidationError("description", "Description should not be empty or null")
	ErrCategoryDescriptionTooLong = domain.NewValidationError("description", "Description should have at most 10.000 characters")
)

// Category representa una categoría del catálogo.
// Los campos solo cambian a través de los métodos; una operación rechazada no modifica nada.
type Category struct {
	id          uuid.UUID
	name        string
	description string
	isActive    bool
	createdAt   time.Time
}

// NewCategory crea una categoría activa.
func NewCategory(name, description string) (*Category, error) {
	return NewCategoryWithStatus(name, description, true)
}

// NewCategoryWithStatus crea una categoría con el estado inicial indicado.
func NewCategoryWithStatus(name, description string, isActive bool) (*Category, error) {
	c := &Category{
		id:          uuid.New(),
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
		isActive:    isActive,
		createdAt:   time.Now(),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Category) ID() uuid.UUID        { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Description() string  { return c.description }
func (c *Category) IsActive() bool       { return c.isActive }
func (c *Category) CreatedAt() time.Time { return c.createdAt }

// Activate marca la categoría como activa.
func (c *Category) Activate() error {
	return c.setActive(true)
}

// Deactivate marca la categoría como inactiva.
func (c *Category) Deactivate() error {
	return c.setActive(false)
}

// Update reemplaza nombre y descripción. Si alguno es inválido no cambia ninguno.
func (c *Category) Update(name, description string) error {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateDescription(description); err != nil {
		return err
	}
	c.name = name
	c.description = description
	return nil
}

// UpdateName reemplaza solo el nombre; la descripción no se toca.
func (c *Category) UpdateName(name string) error {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}
	c.name = name
	return nil
}

// setActive vuelve a validar la entidad completa después de cambiar el estado,
// aunque hoy el estado no interviene en ninguna regla.
func (c *Category) setActive(active bool) error {
	prev := c.isActive
	c.isActive = active
	if err := c.validate(); err != nil {
		c.isActive = prev
		return err
	}
	return nil
}

func (c *Category) validate() error {
	if err := validateName(c.name); err != nil {
		return err
	}
	return validateDescription(c.description)
}

func validateName(name string) error {
	if name == "" {
		return violation(ErrCategoryNameEmpty)
	}
	switch n := utf8.RuneCountInString(name); {
	case n < CategoryNameMinLength:
		return violation(ErrCategoryNameTooShort)
	case n > CategoryNameMaxLength:
		return violation(ErrCategoryNameTooLong)
	}
	return nil
}

func validateDescription(description string) error {
	if description == "" {
		return violation(ErrCategoryDescriptionEmpty)
	}
	if utf8.RuneCountInString(description) > CategoryDescriptionMaxLength {
		return violation(ErrCategoryDescriptionTooLong)
	}
	return nil
}

func violation(rule *domain.ValidationError) error {
	return domain.NewValidationError(rule.Field, rule.Message)
}
