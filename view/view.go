package view

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/wingseng/parts-catalog/i18n"
	"github.com/wingseng/parts-catalog/internal/middleware"
)

var (
	baseDir  string
	once     sync.Once
	tplCache = struct {
		sync.RWMutex
		m map[string]*template.Template
	}{m: map[string]*template.Template{}}
)

func detectBase() {
	candidates := []string{"templates", "../templates", "../../templates"}
	for _, c := range candidates {
		if fi, err := os.Stat(filepath.Clean(c)); err == nil && fi.IsDir() {
			baseDir = filepath.Clean(c)
			return
		}
	}
	baseDir = "templates"
}

// Funcs returns the standard func map including i18n and simple helpers.
func Funcs(r *http.Request) template.FuncMap {
	lang := middleware.LangFrom(r)
	return template.FuncMap{
		"t":    func(code string) string { return i18n.T(lang, i18n.Key(code)) },
		"lang": func() string { return lang },
		"year": func() int { return time.Now().Year() },
		"money": func(amount float64, currency string) string {
			if currency == "" {
				currency = "KES"
			}
			return fmt.Sprintf("%s %.2f", currency, amount)
		},
		"mul": func(a float64, b int) float64 { return a * float64(b) },
		"deref": func(p *float64) float64 {
			if p == nil {
				return 0
			}
			return *p
		},
		"dict": func(pairs ...any) (map[string]any, error) {
			if len(pairs)%2 != 0 {
				return nil, errors.New("dict needs key/value pairs")
			}
			m := make(map[string]any, len(pairs)/2)
			for i := 0; i < len(pairs); i += 2 {
				k, ok := pairs[i].(string)
				if !ok {
					return nil, errors.New("dict keys must be strings")
				}
				m[k] = pairs[i+1]
			}
			return m, nil
		},
	}
}

// Render parses and executes a single template file with shared funcs.
// name should be the filename (e.g., "products.html"). Pages without their
// own doctype are wrapped in layout.html.
func Render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) error {
	once.Do(detectBase)
	if data == nil {
		data = map[string]any{}
	}
	if _, exists := data["Year"]; !exists {
		data["Year"] = time.Now().Year()
	}
	if _, exists := data["Lang"]; !exists {
		data["Lang"] = middleware.LangFrom(r)
	}
	// Cache per language: the func map bakes the resolved lang in.
	key := name + "|" + middleware.LangFrom(r)
	devMode := os.Getenv("DEV") == "1"
	if !devMode {
		tplCache.RLock()
		t, ok := tplCache.m[key]
		tplCache.RUnlock()
		if ok && t != nil {
			return t.Execute(w, data)
		}
	}

	mainPath := filepath.Join(baseDir, name)
	if _, err := os.Stat(mainPath); err != nil {
		return err
	}
	layoutPath := filepath.Join(baseDir, "layout.html")
	partials, _ := filepath.Glob(filepath.Join(baseDir, "partials", "*.html"))
	funcMap := Funcs(r)

	contentBytes, _ := os.ReadFile(mainPath)
	useLayout := !bytes.Contains(bytes.ToLower(contentBytes), []byte("<!doctype"))
	if useLayout {
		if fi, err := os.Stat(layoutPath); err != nil || fi.IsDir() {
			useLayout = false
		}
	}

	var t *template.Template
	if useLayout {
		files := append([]string{layoutPath, mainPath}, partials...)
		parsed, err := template.New("layout.html").Funcs(funcMap).ParseFiles(files...)
		if err != nil {
			return err
		}
		t = parsed
	} else {
		parsed, err := template.New(name).Funcs(funcMap).ParseFiles(mainPath)
		if err != nil {
			return err
		}
		t = parsed
	}
	if !devMode {
		tplCache.Lock()
		tplCache.m[key] = t
		tplCache.Unlock()
	}
	return t.Execute(w, data)
}
