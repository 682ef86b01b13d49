// Package config parses the optional hudbuild.toml project manifest.
//
// Manifest values may embed {{ ... }} expressions, and any section may hold
// conditional sub-tables whose keys are expressions over the build
// environment, e.g.
//
//	[build.'platform == "android"']
//	defines = { HUD_ENGINE_TRACE = "ON" }
//
// Conditional sub-tables whose expression evaluates to true are merged into
// the base section.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/pelletier/go-toml/v2"

	"github.com/hudengine/hudbuild/internal/target"
)

// ManifestName is the manifest filename looked up in the project root.
const ManifestName = "hudbuild.toml"

type Config struct {
	Project   ProjectSection   `toml:"project"`
	Build     BuildSection     `toml:"build"`
	Artifacts ArtifactsSection `toml:"artifacts"`
}

// ProjectSection defines the [project] section.
type ProjectSection struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	// Prepare is an expression script run before the build starts, in the
	// manner of a pre-build hook. It must evaluate to true.
	Prepare string `toml:"prepare"`
}

// BuildSection defines the [build] section and its conditional sub-tables.
type BuildSection struct {
	// Type overrides the default build type when --build-type is not given.
	Type string `toml:"type"`
	// Defines are extra -D<k>=<v> cmake cache entries.
	Defines map[string]string `toml:"defines"`
	// ConanArgs are appended to the conan install command line.
	ConanArgs []string `toml:"conan-args"`
}

// ArtifactsSection defines the [artifacts] section: doublestar glob patterns,
// relative to the project root, gathered into dist/ after a successful build.
type ArtifactsSection struct {
	Paths []string `toml:"paths"`
}

// mergeStructs merges the fields of the src struct into the dst struct:
// slices append, maps overlay, bools or, everything else overwrites when
// non-zero.
func mergeStructs(dst, src any) error {
	dstVal := reflect.ValueOf(dst)
	if dstVal.Kind() != reflect.Pointer || dstVal.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("dst must be a pointer to a struct")
	}

	dstElem := dstVal.Elem()
	srcVal := reflect.ValueOf(src)

	if srcVal.Kind() == reflect.Pointer {
		srcVal = srcVal.Elem()
	}

	if srcVal.Kind() != reflect.Struct {
		return fmt.Errorf("src must be a struct or a pointer to a struct")
	}

	if dstElem.Type() != srcVal.Type() {
		return fmt.Errorf("dst and src must be of the same struct type")
	}

	for i := range srcVal.NumField() {
		srcField := srcVal.Field(i)
		dstField := dstElem.Field(i)

		if !dstField.CanSet() {
			continue
		}

		switch dstField.Kind() {
		case reflect.Slice:
			if !srcField.IsNil() {
				dstField.Set(reflect.AppendSlice(dstField, srcField))
			}
		case reflect.Map:
			if !srcField.IsNil() {
				if dstField.IsNil() {
					dstField.Set(reflect.MakeMap(dstField.Type()))
				}
				for _, key := range srcField.MapKeys() {
					dstField.SetMapIndex(key, srcField.MapIndex(key))
				}
			}
		case reflect.Bool:
			dstField.SetBool(dstField.Bool() || srcField.Bool())
		default:
			if !srcField.IsZero() {
				dstField.Set(srcField)
			}
		}
	}

	return nil
}

func mustMarshal(v any) string {
	b, err := toml.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// unmarshalSection parses a section that has no conditional logic.
func unmarshalSection(rawCfg map[string]any, name string, dst any) error {
	if data, ok := rawCfg[name]; ok {
		if err := toml.Unmarshal([]byte(mustMarshal(data)), dst); err != nil {
			return fmt.Errorf("failed to parse [%s] section: %w", name, err)
		}
	}
	return nil
}

// unmarshalConditionalSection parses a section, then evaluates and merges its
// conditional sub-tables. A sub-table key is treated as a condition when it
// compiles as an expression against the build environment.
func unmarshalConditionalSection[T any](rawCfg map[string]any, name string, dst *T, env Env) error {
	sectionData, ok := rawCfg[name]
	if !ok {
		return nil
	}

	sectionMap, ok := sectionData.(map[string]any)
	if !ok {
		return fmt.Errorf("invalid [%s] section format: expected a table", name)
	}

	baseFields := make(map[string]any)
	conditionalFields := make(map[string]map[string]any)

	for key, val := range sectionMap {
		if subMap, ok := val.(map[string]any); ok {
			_, err := expr.Compile(key, expr.Env(env))
			if err == nil {
				conditionalFields[key] = subMap
			} else {
				baseFields[key] = val
			}
		} else {
			baseFields[key] = val
		}
	}

	if len(baseFields) > 0 {
		if err := toml.Unmarshal([]byte(mustMarshal(baseFields)), dst); err != nil {
			return fmt.Errorf("failed to parse base [%s] section: %w", name, err)
		}
	}

	for expression, condMap := range conditionalFields {
		program, err := expr.Compile(expression, expr.Env(env))
		if err != nil {
			return fmt.Errorf("failed to compile expression for [%s.%q]: %w", name, expression, err)
		}

		result, err := expr.Run(program, env)
		if err != nil {
			return fmt.Errorf("failed to run expression for [%s.%q]: %w", name, expression, err)
		}

		if matched, ok := result.(bool); !ok || !matched {
			continue
		}

		var condSection T
		if err := toml.Unmarshal([]byte(mustMarshal(condMap)), &condSection); err != nil {
			return fmt.Errorf("failed to parse conditional section [%s.%q]: %w", name, expression, err)
		}
		if err := mergeStructs(dst, condSection); err != nil {
			return fmt.Errorf("failed to merge conditional section [%s.%q]: %w", name, expression, err)
		}
	}

	return nil
}

var exprRegex = regexp.MustCompile(`\{\{(.+?)\}\}`)

// evaluateString finds and evaluates all {{...}} expressions in a string.
func evaluateString(s string, env Env) (string, error) {
	matches := exprRegex.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s, nil
	}

	var builder strings.Builder
	lastIndex := 0

	for _, matchIndexes := range matches {
		builder.WriteString(s[lastIndex:matchIndexes[0]])

		expression := strings.TrimSpace(s[matchIndexes[2]:matchIndexes[3]])
		program, err := expr.Compile(expression, expr.Env(env))
		if err != nil {
			return "", fmt.Errorf("failed to compile expression %q: %w", expression, err)
		}

		result, err := expr.Run(program, env)
		if err != nil {
			return "", fmt.Errorf("failed to run expression %q: %w", expression, err)
		}

		builder.WriteString(fmt.Sprintf("%v", result))
		lastIndex = matchIndexes[1]
	}

	builder.WriteString(s[lastIndex:])

	return builder.String(), nil
}

// processExpressions walks the parsed TOML data and evaluates expressions in
// strings.
func processExpressions(data any, env Env) (any, error) {
	switch v := data.(type) {
	case map[string]any:
		for key, val := range v {
			processedVal, err := processExpressions(val, env)
			if err != nil {
				return nil, err
			}
			v[key] = processedVal
		}
		return v, nil
	case []any:
		for i, item := range v {
			processedItem, err := processExpressions(item, env)
			if err != nil {
				return nil, err
			}
			v[i] = processedItem
		}
		return v, nil
	case string:
		return evaluateString(v, env)
	default:
		return data, nil
	}
}

// Parse reads a manifest from rdr and resolves it against env.
func Parse(rdr io.Reader, env Env) (*Config, error) {
	var rawConfig map[string]any
	dec := toml.NewDecoder(rdr)
	if err := dec.Decode(&rawConfig); err != nil {
		if derr, ok := err.(*toml.DecodeError); ok {
			return nil, errors.New(derr.String())
		}
		return nil, err
	}

	processedConfig, err := processExpressions(rawConfig, env)
	if err != nil {
		return nil, fmt.Errorf("error processing expressions in manifest: %w", err)
	}
	rawConfig = processedConfig.(map[string]any)

	cfg := new(Config)

	if err := unmarshalSection(rawConfig, "project", &cfg.Project); err != nil {
		return nil, err
	}
	if err := unmarshalConditionalSection(rawConfig, "build", &cfg.Build, env); err != nil {
		return nil, err
	}
	if err := unmarshalConditionalSection(rawConfig, "artifacts", &cfg.Artifacts, env); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load parses the manifest in the project root. A missing manifest is not an
// error: everything in it is optional.
func Load(root string, env Env) (*Config, error) {
	f, err := os.Open(ManifestPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return new(Config), nil
		}
		return nil, err
	}
	defer f.Close()

	return Parse(bufio.NewReader(f), env)
}

// ManifestPath returns the manifest location for a project root.
func ManifestPath(root string) string {
	return filepath.Join(root, ManifestName)
}

// RunPrepareScript evaluates the [project] prepare script, if any. The script
// must evaluate to true, otherwise the build is aborted.
func (cfg Config) RunPrepareScript(env Env) error {
	if cfg.Project.Prepare == "" {
		return nil
	}

	program, err := expr.Compile(cfg.Project.Prepare, expr.Env(env))
	if err != nil {
		return fmt.Errorf("failed to compile prepare script: %w", err)
	}
	result, err := expr.Run(program, env)
	if err != nil {
		return fmt.Errorf("failed to run prepare script: %w", err)
	}

	if result, ok := result.(bool); !ok || !result {
		return fmt.Errorf("prepare script returned false\n%s", cfg.Project.Prepare)
	}

	return nil
}

// NewEnv builds the expression environment for one build invocation.
func NewEnv(basedir string, p target.Platform, a target.Arch, buildType string) Env {
	environ := make(map[string]string)
	for _, e := range os.Environ() {
		if k, v, ok := strings.Cut(e, "="); ok {
			environ[k] = v
		}
	}

	return Env{
		Platform:  string(p),
		Arch:      string(a),
		BuildType: buildType,
		Environ:   environ,
		basedir:   basedir,
	}
}
