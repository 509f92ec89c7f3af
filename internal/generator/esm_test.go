package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcncl/tsgen/internal/models"
)

func TestGenImport(t *testing.T) {
	single := models.CodegenOptions{SingleQuotes: true}

	tests := []struct {
		name      string
		specifier string
		clause    Clause
		opts      ESMOptions
		expected  string
	}{
		{"side effect", "pkg", Clause{}, ESMOptions{}, `import "pkg";`},
		{"default", "pkg", Default("foo"), ESMOptions{}, `import foo from "pkg";`},
		{"named", "pkg", NamedStrings("foo"), ESMOptions{}, `import { foo } from "pkg";`},
		{"single quotes", "pkg", Default("foo"), ESMOptions{CodegenOptions: single}, `import foo from 'pkg';`},
		{"same alias", "pkg", Named(models.ESMName{Name: "foo", As: "foo"}), ESMOptions{}, `import { foo } from "pkg";`},
		{"alias", "pkg", Named(models.ESMName{Name: "foo", As: "bar"}), ESMOptions{}, `import { foo as bar } from "pkg";`},
		{"namespace", "pkg", Namespace("bar"), ESMOptions{}, `import * as bar from "pkg";`},
		{"default alias", "pkg", Named(models.ESMName{Name: "default", As: "Test"}), ESMOptions{}, `import { default as Test } from "pkg";`},
		{"assert", "pkg", NamedStrings("foo"), ESMOptions{Assert: "json"}, `import { foo } from "pkg" assert { type: "json" };`},
		{"attributes", "pkg", NamedStrings("foo"), ESMOptions{Attributes: "json"}, `import { foo } from "pkg" with { type: "json" };`},
		{"type only", "@nuxt/utils", NamedStrings("test"), ESMOptions{Type: true}, `import type { test } from "@nuxt/utils";`},
		{"type alias", "@nuxt/utils", Named(models.ESMName{Name: "test", As: "value"}), ESMOptions{Type: true}, `import type { test as value } from "@nuxt/utils";`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenImport(tt.specifier, tt.clause, tt.opts))
		})
	}

	assert.Equal(t, `import type { A, B } from "./types";`, GenTypeImport("./types", NamedStrings("A", "B"), ESMOptions{}))
}

func TestGenExport(t *testing.T) {
	single := models.CodegenOptions{SingleQuotes: true}

	tests := []struct {
		name      string
		specifier string
		clause    Clause
		opts      ESMOptions
		expected  string
	}{
		{"bare", "pkg", Clause{}, ESMOptions{}, `export "pkg";`},
		{"default", "pkg", Default("foo"), ESMOptions{}, `export foo from "pkg";`},
		{"named", "pkg", NamedStrings("foo"), ESMOptions{}, `export { foo } from "pkg";`},
		{"alias", "pkg", Named(models.ESMName{Name: "foo", As: "bar"}), ESMOptions{}, `export { foo as bar } from "pkg";`},
		{"star", "pkg", Default("*"), ESMOptions{}, `export * from "pkg";`},
		{"star as", "pkg", Namespace("bar"), ESMOptions{}, `export * as bar from "pkg";`},
		{"named default", "pkg", NamedStrings("default"), ESMOptions{}, `export { default } from "pkg";`},
		{"assert", "pkg", NamedStrings("foo"), ESMOptions{Assert: "json"}, `export { foo } from "pkg" assert { type: "json" };`},
		{"single quotes", "./utils", Default("*"), ESMOptions{CodegenOptions: single}, `export * from './utils';`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenExport(tt.specifier, tt.clause, tt.opts))
		})
	}

	assert.Equal(t, `export type { A } from "./types";`, GenTypeExport("./types", NamedStrings("A"), ESMOptions{}))
}

func TestGenExportStar(t *testing.T) {
	single := models.CodegenOptions{SingleQuotes: true}

	assert.Equal(t, `export * from "pkg";`, GenExportStar("pkg", ESMOptions{}))
	assert.Equal(t, `export * from "pkg" with { type: "json" };`, GenExportStar("pkg", ESMOptions{Attributes: "json"}))
	assert.Equal(t, `export * from "pkg" assert { type: "json" };`, GenExportStar("pkg", ESMOptions{Assert: "json"}))
	assert.Equal(t, `export * as utils from "pkg";`, GenExportStarAs("pkg", "utils", ESMOptions{}))
	assert.Equal(t, `export * as Helpers from './helpers';`, GenExportStarAs("./helpers", "Helpers", ESMOptions{CodegenOptions: single}))
	assert.Equal(t, `export * as ns from "pkg" with { type: "json" };`, GenExportStarAs("pkg", "ns", ESMOptions{Attributes: "json"}))
}

func TestGenDynamicImport(t *testing.T) {
	const chunk = `webpackChunkName: "chunks/dynamic"`

	tests := []struct {
		name     string
		opts     DynamicImportOptions
		expected string
	}{
		{"plain", DynamicImportOptions{}, `import("pkg")`},
		{"wrapper", DynamicImportOptions{Wrapper: true}, `() => import("pkg")`},
		{"interop", DynamicImportOptions{Wrapper: true, InteropDefault: true}, `() => import("pkg").then(m => m.default || m)`},
		{"comment", DynamicImportOptions{Wrapper: true, Comment: chunk}, `() => import("pkg" /* webpackChunkName: "chunks/dynamic" */)`},
		{"assert", DynamicImportOptions{Wrapper: true, ESMOptions: ESMOptions{Assert: "json"}}, `() => import("pkg", { assert: { type: "json" } })`},
		{"attributes", DynamicImportOptions{Wrapper: true, ESMOptions: ESMOptions{Attributes: "json"}}, `() => import("pkg", { with: { type: "json" } })`},
		{"type", DynamicImportOptions{ESMOptions: ESMOptions{Type: true}}, `typeof import("pkg")`},
		{"type name", DynamicImportOptions{ESMOptions: ESMOptions{Type: true}, Name: "foo"}, `typeof import("pkg").foo`},
		{"type quoted name", DynamicImportOptions{ESMOptions: ESMOptions{Type: true}, Name: "foo-bar"}, `typeof import("pkg")["foo-bar"]`},
		{"type comment", DynamicImportOptions{ESMOptions: ESMOptions{Type: true}, Name: "foo", Comment: chunk}, `typeof import("pkg" /* webpackChunkName: "chunks/dynamic" */).foo`},
		{"type attributes", DynamicImportOptions{ESMOptions: ESMOptions{Type: true, Attributes: "json"}, Name: "foo"}, `typeof import("pkg", { with: { type: "json" } }).foo`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenDynamicImport("pkg", tt.opts))
		})
	}
}

func TestGenDefaultExport(t *testing.T) {
	assert.Equal(t, "export default foo;", GenDefaultExport("foo"))
	assert.Equal(t, "export default 42;", GenDefaultExport("42"))
}

func TestGenInlineTypeImport(t *testing.T) {
	assert.Equal(t, `typeof import("pkg").default`, GenInlineTypeImport("pkg", "", ESMOptions{}))
	assert.Equal(t, `typeof import("pkg").foo`, GenInlineTypeImport("pkg", "foo", ESMOptions{}))
	assert.Equal(t, `typeof import('pkg').foo`, GenInlineTypeImport("pkg", "foo", ESMOptions{CodegenOptions: models.CodegenOptions{SingleQuotes: true}}))
}

func TestNewClause(t *testing.T) {
	assert.Equal(t, `import "x";`, GenImport("x", NewClause(nil, false), ESMOptions{}))
	assert.Equal(t, `import a from "x";`, GenImport("x", NewClause([]models.ESMName{{Name: "a"}}, true), ESMOptions{}))
	assert.Equal(t, `import { a, b } from "x";`, GenImport("x", NewClause([]models.ESMName{{Name: "a"}, {Name: "b"}}, false), ESMOptions{}))
}
