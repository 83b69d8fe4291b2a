package api

import (
	"fmt"
	"html/template"
	"io/fs"
	"strings"
)

var pageTemplates = []string{
	"calendar",
	"unlock",
	"not_found",
}

var partialTemplateFiles = []string{"day_editor_partial.html"}

func newTemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"t": templateTranslate,
	}
}

func templateTranslate(messages map[string]string, key string) string {
	return translateMessage(messages, key)
}

// parsePageTemplates builds one template set per page: the base layout, the
// page body and every partial the page may embed.
func parsePageTemplates(files fs.FS, funcMap template.FuncMap, pages []string) (map[string]*template.Template, error) {
	parsed := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		patterns := append([]string{"base.html", page + ".html"}, partialTemplateFiles...)
		tmpl, err := template.New("base").Funcs(funcMap).ParseFS(files, patterns...)
		if err != nil {
			return nil, fmt.Errorf("parse page template %s: %w", page, err)
		}
		parsed[page] = tmpl
	}
	return parsed, nil
}

func parsePartialTemplates(files fs.FS, funcMap template.FuncMap, partialFiles []string) (map[string]*template.Template, error) {
	parsed := make(map[string]*template.Template, len(partialFiles))
	for _, partial := range partialFiles {
		name := strings.TrimSuffix(partial, ".html")
		tmpl, err := template.New(name).Funcs(funcMap).ParseFS(files, partial)
		if err != nil {
			return nil, fmt.Errorf("parse partial %s: %w", partial, err)
		}
		parsed[name] = tmpl
	}
	return parsed, nil
}
