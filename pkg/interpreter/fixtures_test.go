package interpreter

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"minml/interpreter-go/pkg/runtime"
)

type fixtureFile struct {
	Description string         `yaml:"description"`
	Cases       []*fixtureCase `yaml:"cases"`
}

type fixtureCase struct {
	Name    string           `yaml:"name"`
	Program []map[string]any `yaml:"program"`
	Expect  fixtureExpect    `yaml:"expect"`
}

type fixtureExpect struct {
	Result   *fixtureValue            `yaml:"result"`
	Error    string                   `yaml:"error"`
	Bindings map[string]*fixtureValue `yaml:"bindings"`
}

type fixtureValue struct {
	Kind     string          `yaml:"kind"`
	Value    any             `yaml:"value"`
	Inner    *fixtureValue   `yaml:"inner"`
	Elements []*fixtureValue `yaml:"elements"`
}

func TestFixtureCorpus(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "fixtures", "*.yaml"))
	if err != nil {
		t.Fatalf("glob fixtures: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("no fixture files found")
	}
	for _, path := range paths {
		file := readFixtureFile(t, path)
		base := filepath.Base(path)
		for _, tc := range file.Cases {
			t.Run(base+"/"+tc.Name, func(t *testing.T) {
				runFixtureCase(t, tc)
			})
		}
	}
}

func readFixtureFile(t *testing.T, path string) *fixtureFile {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture %s: %v", path, err)
	}
	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		t.Fatalf("parse fixture %s: %v", path, err)
	}
	return &file
}

func runFixtureCase(t *testing.T, tc *fixtureCase) {
	t.Helper()
	program, err := decodeProgram(tc.Program)
	if err != nil {
		t.Fatalf("decode program: %v", err)
	}
	interp := New()
	val, env, evalErr := interp.EvaluateProgram(program)

	if tc.Expect.Error != "" {
		if evalErr == nil {
			t.Fatalf("expected %s failure, got value %#v", tc.Expect.Error, val)
		}
		code, ok := CodeOf(evalErr)
		if !ok {
			t.Fatalf("expected EvalError, got %v", evalErr)
		}
		if code.String() != tc.Expect.Error {
			t.Fatalf("expected %s failure, got %s (%v)", tc.Expect.Error, code, evalErr)
		}
		return
	}
	if evalErr != nil {
		t.Fatalf("unexpected error: %v", evalErr)
	}
	if tc.Expect.Result != nil && !valueMatches(tc.Expect.Result, val) {
		t.Fatalf("result mismatch: expected %+v, got %#v", tc.Expect.Result, val)
	}
	for name, expected := range tc.Expect.Bindings {
		bound, ok := env.Find(name)
		if !ok {
			t.Fatalf("expected binding %q in final environment", name)
		}
		if !valueMatches(expected, bound) {
			t.Fatalf("binding %q mismatch: expected %+v, got %#v", name, expected, bound)
		}
	}
}

func valueMatches(expected *fixtureValue, got runtime.Value) bool {
	switch expected.Kind {
	case "integer":
		v, ok := got.(runtime.IntegerValue)
		want, valid := intOf(expected.Value)
		return ok && valid && v.Val == want
	case "float":
		v, ok := got.(runtime.FloatValue)
		want, valid := floatOf(expected.Value)
		return ok && valid && v.Val == want
	case "bool":
		v, ok := got.(runtime.BoolValue)
		want, isBool := expected.Value.(bool)
		return ok && isBool && v.Val == want
	case "char":
		v, ok := got.(runtime.CharValue)
		want, isStr := expected.Value.(string)
		return ok && isStr && len(want) > 0 && v.Val == []rune(want)[0]
	case "string":
		v, ok := got.(runtime.StringValue)
		want, isStr := expected.Value.(string)
		return ok && isStr && v.Val == want
	case "unit":
		_, ok := got.(runtime.UnitValue)
		return ok
	case "none":
		v, ok := got.(runtime.OptionValue)
		return ok && !v.IsSome()
	case "some":
		v, ok := got.(runtime.OptionValue)
		if !ok || !v.IsSome() {
			return false
		}
		return expected.Inner == nil || valueMatches(expected.Inner, v.Inner)
	case "list":
		v, ok := got.(*runtime.ListValue)
		return ok && elementsMatch(expected.Elements, v.Elements)
	case "tuple":
		v, ok := got.(*runtime.TupleValue)
		return ok && elementsMatch(expected.Elements, v.Elements)
	case "closure":
		return got.Kind() == runtime.KindClosure
	case "clause_function":
		return got.Kind() == runtime.KindClauseFunction
	default:
		return false
	}
}

func elementsMatch(expected []*fixtureValue, got []runtime.Value) bool {
	if len(expected) != len(got) {
		return false
	}
	for idx, el := range expected {
		if !valueMatches(el, got[idx]) {
			return false
		}
	}
	return true
}

func intOf(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

func floatOf(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
