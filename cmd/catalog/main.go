// catalog construye una categoría a partir de flags, aplica los comandos pedidos
// y escribe el resultado como JSON en stdout.
//
// Uso: go run ./cmd/catalog -name "Películas" -description "Largometrajes" [-rename X [-redescribe Y]] [-activate|-deactivate] [-inactive]
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/codeflix/catalog/internal/application/dto"
	"github.com/codeflix/catalog/internal/application/usecase"
	"github.com/codeflix/catalog/pkg/config"
	"github.com/codeflix/catalog/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		App:   cfg.App.Name,
	})
	log.Debug().
		Str("env", cfg.App.Env).
		Msg("iniciando herramienta")

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, log))
}

type options struct {
	name        string
	description string
	inactive    bool
	rename      string
	redescribe  string
	activate    bool
	deactivate  bool
}

var (
	errConflictingFlags        = errors.New("-activate y -deactivate son excluyentes")
	errRedescribeWithoutRename = errors.New("-redescribe requiere -rename")
)

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.name, "name", "", "nombre de la categoría")
	fs.StringVar(&o.description, "description", "", "descripción de la categoría")
	fs.BoolVar(&o.inactive, "inactive", false, "crear la categoría inactiva")
	fs.StringVar(&o.rename, "rename", "", "nuevo nombre a aplicar tras crearla")
	fs.StringVar(&o.redescribe, "redescribe", "", "nueva descripción (requiere -rename)")
	fs.BoolVar(&o.activate, "activate", false, "activar tras crearla")
	fs.BoolVar(&o.deactivate, "deactivate", false, "desactivar tras crearla")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.activate && o.deactivate {
		return o, errConflictingFlags
	}
	if o.redescribe != "" && o.rename == "" {
		return o, errRedescribeWithoutRename
	}
	return o, nil
}

// run devuelve el código de salida: 0 si todo se aplicó, 1 si algo fue rechazado, 2 si los flags son inválidos.
// El uso y los errores de flags van a stderr; stdout solo recibe JSON.
func run(args []string, stdout, stderr io.Writer, log *logger.Logger) int {
	o, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "catalog: %v\n", err)
		log.Error().Err(err).Msg("flags inválidos")
		return 2
	}

	uc := usecase.NewCategoryUseCase(log)
	in := dto.CreateCategoryRequest{Name: o.name, Description: o.description}
	if o.inactive {
		active := false
		in.IsActive = &active
	}

	c, err := uc.Create(in)
	if err != nil {
		return writeError(stdout, stderr, err)
	}

	if o.rename != "" {
		upd := dto.UpdateCategoryRequest{Name: o.rename}
		if o.redescribe != "" {
			upd.Description = &o.redescribe
		}
		if err := uc.Update(c, upd); err != nil {
			return writeError(stdout, stderr, err)
		}
	}

	if o.activate || o.deactivate {
		if err := uc.SetActive(c, o.activate); err != nil {
			return writeError(stdout, stderr, err)
		}
	}

	if err := writeJSON(stdout, usecase.ToCategoryResponse(c)); err != nil {
		log.Error().Err(err).Msg("escribir salida")
		return 1
	}
	return 0
}

func writeError(w, stderr io.Writer, err error) int {
	if werr := writeJSON(w, usecase.ToErrorResponse(err)); werr != nil {
		fmt.Fprintf(stderr, "escribir salida: %v\n", werr)
	}
	return 1
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
