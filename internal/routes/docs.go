package routes

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gopkg.in/yaml.v3"

	"github.com/c00p75/fitness-league-sub000/internal/config"
	"github.com/c00p75/fitness-league-sub000/internal/rpc"
)

const docsContentType = "application/yaml; charset=utf-8"

type procedureCatalog struct {
	Service     string           `yaml:"service"`
	GeneratedAt string           `yaml:"generatedAt"`
	Transport   catalogTransport `yaml:"transport"`
	Procedures  []rpc.Descriptor `yaml:"procedures"`
}

type catalogTransport struct {
	Endpoint string `yaml:"endpoint"`
	Queries  string `yaml:"queries"`
	Mutation string `yaml:"mutations"`
	Batch    string `yaml:"batch"`
	Auth     string `yaml:"auth"`
}

// registerDocsRoutes serves the procedure catalog in development only.
func registerDocsRoutes(app fiber.Router, cfg *config.Config, router *rpc.Router) error {
	if !cfg.DocsEnabled() {
		return nil
	}

	body, err := yaml.Marshal(procedureCatalog{
		Service:     "fitness-league",
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Transport: catalogTransport{
			Endpoint: "/api/trpc/{path}",
			Queries:  "GET with ?input=<json> or POST",
			Mutation: "POST with a JSON body",
			Batch:    "?batch=1, comma separated paths, input keyed by call index",
			Auth:     "Authorization: Bearer <token>",
		},
		Procedures: router.Procedures(),
	})
	if err != nil {
		return fmt.Errorf("encode procedure catalog: %w", err)
	}

	app.Get("/docs/procedures.yaml", func(c *fiber.Ctx) error {
		applyDocsBaseHeaders(c, docsContentType)
		c.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'; base-uri 'none'; form-action 'none'")
		return c.Status(fiber.StatusOK).Send(body)
	})
	return nil
}

func applyDocsBaseHeaders(c *fiber.Ctx, contentType string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "no-store, max-age=0")
	c.Set(fiber.HeaderPragma, "no-cache")
	c.Set(fiber.HeaderExpires, "0")
	c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
	c.Set(fiber.HeaderXFrameOptions, "DENY")
	c.Set("Referrer-Policy", "no-referrer")
	c.Set("Cross-Origin-Resource-Policy", "same-origin")
	c.Set("X-Robots-Tag", "noindex, nofollow")
}
