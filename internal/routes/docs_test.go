package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gopkg.in/yaml.v3"

	"github.com/c00p75/fitness-league-sub000/internal/catalog"
	"github.com/c00p75/fitness-league-sub000/internal/config"
	"github.com/c00p75/fitness-league-sub000/internal/handlers"
	"github.com/c00p75/fitness-league-sub000/internal/rpc"
)

func docsRouter() *rpc.Router {
	return rpc.NewRouter(map[string]rpc.Namespace{
		"exercises": handlers.NewExercisesHandler(catalog.New()).Procedures(),
		"auth":      handlers.NewAuthHandler(nil).Procedures(),
	})
}

func TestRegisterDocsRoutesServesProcedureCatalog(t *testing.T) {
	app := fiber.New()
	cfg := &config.Config{AppEnv: "development", EnableDocs: true}

	if err := registerDocsRoutes(app, cfg, docsRouter()); err != nil {
		t.Fatalf("registerDocsRoutes: %v", err)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs/procedures.yaml", nil))
	if err != nil {
		t.Fatalf("app.Test docs: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected docs status 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Security-Policy"); !strings.Contains(got, "default-src 'none'") {
		t.Fatalf("expected restrictive CSP, got %q", got)
	}
	if got := resp.Header.Get(fiber.HeaderContentType); !strings.HasPrefix(got, "application/yaml") {
		t.Fatalf("expected yaml content type, got %q", got)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var doc procedureCatalog
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}

	byPath := map[string]rpc.Descriptor{}
	for _, d := range doc.Procedures {
		byPath[d.Path] = d
	}
	signUp, ok := byPath["auth.signUp"]
	if !ok || signUp.Kind != "mutation" || signUp.Tier != "public" {
		t.Fatalf("unexpected auth.signUp descriptor: %+v", signUp)
	}
	if d := byPath["auth.deleteAccount"]; d.Tier != "protected" {
		t.Fatalf("expected auth.deleteAccount to be protected, got %+v", d)
	}
	if d := byPath["exercises.searchExercises"]; d.Kind != "query" {
		t.Fatalf("expected exercises.searchExercises to be a query, got %+v", d)
	}
}

func TestRegisterDocsRoutesDisabledOutsideDevelopment(t *testing.T) {
	for _, cfg := range []*config.Config{
		{AppEnv: "production", EnableDocs: true},
		{AppEnv: "development", EnableDocs: false},
	} {
		app := fiber.New()
		if err := registerDocsRoutes(app, cfg, docsRouter()); err != nil {
			t.Fatalf("registerDocsRoutes: %v", err)
		}

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs/procedures.yaml", nil))
		if err != nil {
			t.Fatalf("app.Test docs: %v", err)
		}
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404 for %+v, got %d", cfg, resp.StatusCode)
		}
	}
}
