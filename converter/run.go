package converter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/apidoc2oas/apidoc"
	"github.com/erraggy/apidoc2oas/internal/issues"
	"github.com/erraggy/apidoc2oas/openapi"
	"github.com/erraggy/apidoc2oas/schemagen"
)

// run holds the state of one conversion.
type run struct {
	doc      *openapi.Document
	registry *schemagen.Registry
	logger   apidoc.Logger
	issues   []ConversionIssue

	// prefixes maps each claimed schema prefix to the operation that owns it.
	prefixes map[string]string
}

// fallbackSchemaPrefix is used for endpoint names with no usable characters.
const fallbackSchemaPrefix = "Endpoint"

func newRun(project *apidoc.Project, logger apidoc.Logger) *run {
	if project == nil {
		project = &apidoc.Project{}
	}
	doc := openapi.NewDocument(buildInfo(project))
	if project.URL != "" {
		doc.Servers = []*openapi.Server{{URL: project.URL}}
	}
	return &run{
		doc:      doc,
		registry: schemagen.NewRegistry(),
		logger:   logger,
		prefixes: make(map[string]string),
	}
}

func buildInfo(p *apidoc.Project) *openapi.Info {
	title := p.Title
	if title == "" {
		title = p.Name
	}
	return &openapi.Info{
		Title:       title,
		Version:     p.Version,
		Description: p.Description,
	}
}

// addEndpoint converts one apidoc record into an operation on its path item.
func (r *run) addEndpoint(ep *apidoc.Endpoint) {
	path := TemplatePath(ep.URL)
	method := ep.Method()
	logger := r.logger.With("endpoint", ep.Name, "method", method, "url", path)
	logger.Debug("converting endpoint")

	if !openapi.IsMethod(method) {
		r.addIssue(ep, "paths."+path,
			fmt.Sprintf("unsupported HTTP method %q; endpoint skipped", ep.Type), SeverityWarning)
		return
	}

	item, ok := r.doc.Paths[path]
	if !ok {
		item = &openapi.PathItem{}
		r.doc.Paths[path] = item
	}
	if _, dup := item.Operations()[method]; dup {
		r.addIssue(ep, fmt.Sprintf("paths.%s.%s", path, method),
			"operation declared more than once; the last declaration wins", SeverityWarning)
	}
	item.SetOperation(method, r.buildOperation(ep, path, logger))
}

// schemaPrefix claims the component prefix for the operation at opPath.
// A prefix owned by another operation gets the first free numeric suffix.
func (r *run) schemaPrefix(ep *apidoc.Endpoint, opPath string) string {
	base := schemagen.SchemaPrefix(ep.Name)
	if base == "" {
		base = fallbackSchemaPrefix
	}

	prefix := base
	for n := 2; ; n++ {
		owner, taken := r.prefixes[prefix]
		if !taken || owner == opPath {
			break
		}
		prefix = base + strconv.Itoa(n)
	}
	r.prefixes[prefix] = opPath

	if prefix != base {
		r.addIssue(ep, opPath,
			fmt.Sprintf("schema prefix %q is already used by %s; using %q", base, r.prefixes[base], prefix),
			SeverityWarning)
	}
	return prefix
}

// finish attaches the registered schemas and returns the document.
func (r *run) finish() *openapi.Document {
	r.doc.Components.Schemas = r.registry.Schemas()
	return r.doc
}

func (r *run) addIssue(ep *apidoc.Endpoint, path, message string, sev Severity) {
	r.issues = append(r.issues, issues.Issue{
		Path:     path,
		Message:  message,
		Severity: sev,
		Endpoint: ep.Name,
		Method:   strings.ToLower(ep.Type),
	})
}

func (r *run) addIssueWithContext(ep *apidoc.Endpoint, path, message, context string, sev Severity) {
	r.issues = append(r.issues, issues.Issue{
		Path:     path,
		Message:  message,
		Severity: sev,
		Endpoint: ep.Name,
		Method:   strings.ToLower(ep.Type),
		Context:  context,
	})
}
