package usecase

import (
	"errors"
	"fmt"

	"github.com/codeflix/catalog/internal/application/dto"
	"github.com/codeflix/catalog/internal/domain"
	"github.com/codeflix/catalog/internal/domain/entity"
	"github.com/codeflix/catalog/pkg/logger"
)

// CategoryUseCase aplica comandos sobre categorías que pertenecen al llamador.
// No persiste nada: quien invoca decide qué hacer con la entidad resultante.
type CategoryUseCase struct {
	log *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(log *logger.Logger) *CategoryUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CategoryUseCase{log: log}
}

// Create crea una nueva categoría a partir de la solicitud.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*entity.Category, error) {
	var (
		c   *entity.Category
		err error
	)
	if in.IsActive == nil {
		c, err = entity.NewCategory(in.Name, in.Description)
	} else {
		c, err = entity.NewCategoryWithStatus(in.Name, in.Description, *in.IsActive)
	}
	if err != nil {
		uc.logRejected("create", err)
		return nil, fmt.Errorf("crear categoría: %w", err)
	}
	uc.log.Debug().
		Str("category_id", c.ID().String()).
		Bool("is_active", c.IsActive()).
		Msg("categoría creada")
	return c, nil
}

// Update actualiza nombre y, si viene informada, la descripción.
func (uc *CategoryUseCase) Update(c *entity.Category, in dto.UpdateCategoryRequest) error {
	var err error
	if in.Description == nil {
		err = c.UpdateName(in.Name)
	} else {
		err = c.Update(in.Name, *in.Description)
	}
	if err != nil {
		uc.logRejected("update", err)
		return fmt.Errorf("actualizar categoría %s: %w", c.ID(), err)
	}
	uc.log.Debug().Str("category_id", c.ID().String()).Msg("categoría actualizada")
	return nil
}

// SetActive activa o desactiva la categoría.
func (uc *CategoryUseCase) SetActive(c *entity.Category, active bool) error {
	op := c.Deactivate
	if active {
		op = c.Activate
	}
	if err := op(); err != nil {
		uc.logRejected("set_active", err)
		return fmt.Errorf("cambiar estado de categoría %s: %w", c.ID(), err)
	}
	uc.log.Debug().
		Str("category_id", c.ID().String()).
		Bool("is_active", c.IsActive()).
		Msg("estado de categoría actualizado")
	return nil
}

func (uc *CategoryUseCase) logRejected(op string, err error) {
	ev := uc.log.Warn().Str("op", op).Err(err)
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		ev = ev.Str("field", verr.Field)
	}
	ev.Msg("operación de categoría rechazada")
}

// ToCategoryResponse convierte la entidad en su representación de salida.
func ToCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID().String(),
		Name:        c.Name(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
	}
}

// ToErrorResponse traduce un error del caso de uso al cuerpo de error.
// Los errores de validación conservan el mensaje de la regla incumplida.
func ToErrorResponse(err error) dto.ErrorResponse {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return dto.ErrorResponse{
			Code:    dto.CodeValidationError,
			Field:   verr.Field,
			Message: verr.Message,
		}
	}
	return dto.ErrorResponse{Code: dto.CodeInternalError, Message: err.Error()}
}
