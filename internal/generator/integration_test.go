package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/tsgen/internal/analyzer"
	"github.com/mcncl/tsgen/internal/config"
	"github.com/mcncl/tsgen/internal/generator"
	"github.com/mcncl/tsgen/internal/parser"
)

func generate(t *testing.T, cfg *config.Config, document string) string {
	t.Helper()

	doc, err := parser.ParseDocumentString(document)
	require.NoError(t, err)

	module, err := analyzer.NewAnalyzerWithConfig(cfg, nil).Analyze(doc)
	require.NoError(t, err)

	code, err := generator.NewGenerator(cfg.Codegen()).GenerateModule(module)
	require.NoError(t, err)
	return code
}

func TestIntegration_ParserAnalyzerGenerator(t *testing.T) {
	document := `
header: Code generated by tsgen. DO NOT EDIT.
declarations:
  - kind: import
    from: vue
    names: [defineComponent]
  - kind: variable
    name: routes
    export: true
    value:
      array:
        - { path: /, component: "() => import('./Home.vue')" }
  - kind: default_export
    value:
      object: { name: app, debug: false }
`

	code := generate(t, config.NewConfig(), document)

	expected := `// Code generated by tsgen. DO NOT EDIT.

import { defineComponent } from "vue";

export const routes = [
  {
    path: /,
    component: () => import('./Home.vue')
  }
]

export default {
  name: app,
  debug: false
};
`
	assert.Equal(t, expected, code)
}

func TestIntegration_InferredInterfaces(t *testing.T) {
	document := `
declarations:
  - kind: infer
    name: user
    export: true
    sample:
      user_id: 123
      username: johndoe
      profile:
        full_name: John Doe
        tags: [a, b]
`

	code := generate(t, config.NewConfig(), document)

	expected := `export interface User {
  user_id: number
  username: string
  profile: UserProfile
}

export interface UserProfile {
  full_name: string
  tags: string[]
}
`
	assert.Equal(t, expected, code)
}

func TestIntegration_SchemaWithSingleQuotes(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Strings.SingleQuotes = true

	document := `
declarations:
  - kind: schema
    schema:
      title: Task
      type: object
      required: [state]
      properties:
        state: { enum: [open, done] }
        labels: { type: array, items: { type: string } }
`

	code := generate(t, cfg, document)

	expected := `interface Task {
  state: 'open' | 'done'
  labels?: string[]
}
`
	assert.Equal(t, expected, code)
}
