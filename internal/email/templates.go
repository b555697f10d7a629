package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

const ExpiryDigestTemplate = "expiry_digest"

const expiryDigestHTML = `<p>Hello {{.GymName}},</p>
<p>{{len .Entries}} membership(s) expired and can still be renewed until the date shown:</p>
<table>
<tr><th>Member</th><th>Plan</th><th>Ended</th><th>Renew by</th></tr>
{{range .Entries}}<tr><td>{{.MemberName}}</td><td>{{.PlanName}}</td><td>{{.EndDate}}</td><td>{{.RenewBy}}</td></tr>
{{end}}</table>`

// TemplateManager keeps parsed HTML templates by name.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager returns a manager preloaded with the built-in templates.
func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{templates: make(map[string]*template.Template)}
	if err := tm.AddTemplate(ExpiryDigestTemplate, expiryDigestHTML); err != nil {
		panic(err)
	}
	return tm
}

func (tm *TemplateManager) Render(name string, data any) (string, error) {
	tm.mutex.RLock()
	tpl, ok := tm.templates[name]
	tm.mutex.RUnlock()

	if !ok {
		return "", fmt.Errorf("template not found: %s", name)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name, body string) error {
	tpl, err := template.New(name).Parse(body)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", name, err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}
