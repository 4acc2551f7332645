// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/loglens/loglens/internal/pkg/must"
	"sigs.k8s.io/yaml"
)

// printer collects items and writes them in the format of the --output flag.
type printer interface {
	Append(...any)
	Close() // Flush any collected items.
}

type appender []any

func (a *appender) Append(items ...any) { *a = append(*a, items...) }

type jsonPrinter struct {
	appender
	*json.Encoder
}

func (p *jsonPrinter) Print(v any) { _ = p.Encode(v) }
func (p *jsonPrinter) Close()      { p.Print(p.appender) }

type ndJSONPrinter struct{ jsonPrinter }

func (p *ndJSONPrinter) Append(items ...any) {
	for _, v := range items {
		p.Print(v)
	}
}
func (p *ndJSONPrinter) Close() {}

type yamlPrinter struct {
	io.Writer
	appender
}

func (p *yamlPrinter) Close() { b, _ := yaml.Marshal(p.appender); _, _ = p.Write(b) }

// templatePrinter applies the --template string to each item, with sprig functions available.
type templatePrinter struct {
	io.Writer
	tmpl *template.Template
}

func (p *templatePrinter) Append(items ...any) {
	for _, v := range items {
		must.Must(p.tmpl.Execute(p.Writer, v))
		_, _ = io.WriteString(p.Writer, "\n")
	}
}
func (p *templatePrinter) Close() {}

func newPrinter(w io.Writer) printer {
	switch *outputFlag {
	case "json":
		return &jsonPrinter{Encoder: json.NewEncoder(w)}

	case "json-pretty":
		p := &jsonPrinter{Encoder: json.NewEncoder(w)}
		p.SetIndent("", "  ")
		return p

	case "ndjson":
		return &ndJSONPrinter{jsonPrinter{Encoder: json.NewEncoder(w)}}

	case "yaml":
		return &yamlPrinter{Writer: w}

	case "template":
		if *templateFlag == "" {
			must.Must(fmt.Errorf("-o template requires --template"))
		}
		t := template.New("output").Funcs(sprig.TxtFuncMap())
		return &templatePrinter{Writer: w, tmpl: must.Must1(t.Parse(*templateFlag))}

	default:
		must.Must(fmt.Errorf("invalid output type: %v", *outputFlag))
		return nil
	}
}
