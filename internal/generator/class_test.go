package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcncl/tsgen/internal/models"
)

func TestGenGetterSetter(t *testing.T) {
	assert.Equal(t, "/** Getter for x */\nget x() {\n  return this._x;\n}",
		GenGetter("x", []string{"return this._x;"}, "", models.NewJSDoc("Getter for x"), ""))
	assert.Equal(t, "get x(): number {\n  return this._x;\n}",
		GenGetter("x", []string{"return this._x;"}, "number", nil, ""))
	assert.Equal(t, "/** Setter for x */\nset x(value: number) {\n  this._x = value;\n}",
		GenSetter("x", "value", []string{"this._x = value;"}, "number", models.NewJSDoc("Setter for x"), ""))
	assert.Equal(t, "set x(value) {}", GenSetter("x", "value", nil, "", nil, ""))
}

func TestGenClassMethod(t *testing.T) {
	tests := []struct {
		name     string
		opts     MethodOptions
		expected string
	}{
		{
			name:     "plain",
			opts:     MethodOptions{Name: "run"},
			expected: "run() {}",
		},
		{
			name: "static async",
			opts: MethodOptions{
				Name:       "create",
				Static:     true,
				Async:      true,
				ReturnType: "Promise<Foo>",
				Body:       []string{"return new Foo();"},
			},
			expected: "static async create(): Promise<Foo> {\n  return new Foo();\n}",
		},
		{
			name: "generator with generics",
			opts: MethodOptions{
				Name:       "items",
				Generator:  true,
				Generics:   []models.TypeGeneric{{Name: "T"}},
				Parameters: []models.TypeField{{Name: "list", Type: "T[]"}},
				Body:       []string{"yield* list;"},
			},
			expected: "*items<T>(list: T[]) {\n  yield* list;\n}",
		},
		{
			name:     "static getter",
			opts:     MethodOptions{Name: "instance", Kind: MethodGetter, Static: true, ReturnType: "Foo", Body: []string{"return inst;"}},
			expected: "static get instance(): Foo {\n  return inst;\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenClassMethod(tt.opts, ""))
		})
	}
}

func TestGenConstructor(t *testing.T) {
	params := []models.TypeField{{Name: "name", Type: "string"}}

	assert.Equal(t, "constructor() {}", GenConstructor(nil, nil, nil, ""))
	assert.Equal(t, "constructor(name: string) {\n  this.name = name;\n}",
		GenConstructor(params, []string{"this.name = name;"}, nil, ""))
	assert.Equal(t, "constructor(name: string) {\n  super(name);\n  this.ready = true;\n}",
		GenConstructor(params, []string{"this.ready = true;"}, strPtr("name"), ""))
	assert.Equal(t, "constructor() {\n  super();\n}", GenConstructor(nil, nil, strPtr(""), ""))
}

func TestGenClassProperty(t *testing.T) {
	tests := []struct {
		name     string
		field    models.TypeField
		expected string
	}{
		{"bare", models.TypeField{Name: "x"}, "x"},
		{"typed", models.TypeField{Name: "x", Type: "number"}, "x: number"},
		{"optional", models.TypeField{Name: "x", Type: "number", Optional: true}, "x?: number"},
		{"value", models.TypeField{Name: "count", Value: strPtr("0")}, "count = 0"},
		{"modifiers", models.TypeField{Name: "id", Type: "string", Static: true, Readonly: true}, "static readonly id: string"},
		{"private", models.TypeField{Name: "cache", Type: "Map<string, number>", Private: true, Value: strPtr("new Map()")}, "private cache: Map<string, number> = new Map()"},
		{"jsdoc", models.TypeField{Name: "x", Type: "number", JSDoc: models.NewJSDoc("The x")}, "/** The x */\nx: number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenClassProperty(tt.field, ""))
		})
	}
}

func TestGenClass(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "class Foo {}", GenClass("Foo", nil, ClassOptions{}, ""))
	})

	t.Run("heritage", func(t *testing.T) {
		assert.Equal(t, "export class Foo extends Base implements A, B {}",
			GenClass("Foo", nil, ClassOptions{Export: true, Extends: "Base", Implements: []string{"A", "B"}}, ""))
	})

	t.Run("members", func(t *testing.T) {
		members := []string{
			GenClassProperty(models.TypeField{Name: "_x", Type: "number", Private: true, Value: strPtr("0")}, ""),
			GenGetter("x", []string{"return this._x;"}, "number", models.NewJSDoc("Getter for x"), ""),
		}
		expected := `/** A point */
class Point {
  private _x: number = 0
  /** Getter for x */
  get x(): number {
    return this._x;
  }
}`
		assert.Equal(t, expected, GenClass("Point", members, ClassOptions{JSDoc: models.NewJSDoc("A point")}, ""))
	})
}

func TestGenDecorator(t *testing.T) {
	assert.Equal(t, "@Injectable", GenDecorator("Injectable", "", ""))
	assert.Equal(t, `  @Component({ selector: "app" })`, GenDecorator("Component", `({ selector: "app" })`, "  "))
}
