package apidocs

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// SpecPath is the OpenAPI document relative to the project root.
const SpecPath = "public/docs/v1/openapi.yml"

// Load reads and validates an OpenAPI document.
func Load(ctx context.Context, path string) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load openapi document %s: %w", path, err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document %s: %w", path, err)
	}
	return doc, nil
}

// Mount validates the document under basePath and serves the swagger UI at
// /docs/api/v1.
func Mount(app *fiber.App, basePath string) error {
	path := basePath + SpecPath
	if _, err := Load(context.Background(), path); err != nil {
		return err
	}

	app.Use(swagger.New(swagger.Config{
		BasePath: "/docs/api/",
		FilePath: path,
		Path:     "v1",
	}))
	return nil
}
