// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files against the i18n.T calls in the source
// tree. It reports keys used in code but missing from a locale, keys no code
// uses, and translations whose fmt verbs disagree with the primary locale.
//
// Run it from the repository root:
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

var (
	usedKeyRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)
	verbRe    = regexp.MustCompile(`%[-+# 0]*\d*(?:\.\d+)?[a-zA-Z]`)
)

// report collects everything the linter found.
type report struct {
	missing  map[string][]string // locale file -> keys
	orphaned []string
	verbs    map[string][]string // locale file -> keys with mismatching verbs
}

func (r report) failed() bool {
	for _, keys := range r.missing {
		if len(keys) > 0 {
			return true
		}
	}
	for _, keys := range r.verbs {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

func main() {
	r, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}

	for _, file := range sortedKeys(r.missing) {
		for _, key := range r.missing[file] {
			fmt.Printf("missing   %s: %s\n", file, key)
		}
	}
	for _, file := range sortedKeys(r.verbs) {
		for _, key := range r.verbs[file] {
			fmt.Printf("verbs     %s: %s\n", file, key)
		}
	}
	for _, key := range r.orphaned {
		fmt.Printf("orphaned  %s\n", key)
	}

	if r.failed() {
		os.Exit(1)
	}
	fmt.Println("locales are consistent")
}

func lint(root, locales string) (report, error) {
	r := report{missing: map[string][]string{}, verbs: map[string][]string{}}

	used, err := findUsedKeys(root)
	if err != nil {
		return r, fmt.Errorf("scanning sources: %w", err)
	}
	primary, err := loadLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return r, fmt.Errorf("loading primary locale: %w", err)
	}
	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return r, err
	}

	for key := range primary {
		if _, ok := used[key]; !ok {
			r.orphaned = append(r.orphaned, key)
		}
	}
	sort.Strings(r.orphaned)

	for _, file := range files {
		name := filepath.Base(file)
		msgs, err := loadLocale(file)
		if err != nil {
			return r, fmt.Errorf("loading %s: %w", name, err)
		}
		for key := range used {
			if _, ok := msgs[key]; !ok {
				r.missing[name] = append(r.missing[name], key)
			}
		}
		sort.Strings(r.missing[name])

		if name == primaryLocale {
			continue
		}
		for key, want := range primary {
			got, ok := msgs[key]
			if ok && !sameVerbs(want, got) {
				r.verbs[name] = append(r.verbs[name], key)
			}
		}
		sort.Strings(r.verbs[name])
	}
	return r, nil
}

// findUsedKeys scans non-test .go files for i18n.T("key") calls. The tools
// tree and underscore-prefixed directories are skipped.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range usedKeyRe.FindAllStringSubmatch(string(content), -1) {
			keys[m[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadLocale reads a locale file into a flat id -> message map.
func loadLocale(path string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]interface{}
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	out := make(map[string]string)
	flattenYAML("", data, out)
	return out, nil
}

// flattenYAML converts a nested map into dot-separated ids.
func flattenYAML(prefix string, node interface{}, out map[string]string) {
	switch v := node.(type) {
	case map[string]interface{}:
		for k, val := range v {
			p := k
			if prefix != "" {
				p = prefix + "." + k
			}
			flattenYAML(p, val, out)
		}
	case []interface{}:
		for i, val := range v {
			flattenYAML(fmt.Sprintf("%s[%d]", prefix, i), val, out)
		}
	default:
		if prefix != "" {
			out[prefix] = fmt.Sprint(v)
		}
	}
}

// sameVerbs reports whether a and b use the same fmt verbs in the same order.
func sameVerbs(a, b string) bool {
	va, vb := verbRe.FindAllString(a, -1), verbRe.FindAllString(b, -1)
	if len(va) != len(vb) {
		return false
	}
	for i := range va {
		if va[i] != vb[i] {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
