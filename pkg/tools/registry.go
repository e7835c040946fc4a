package tools

import (
	"fmt"
	"sync"

	"github.com/NoAme666/aiquant/pkg/config"
)

// Registry holds the frozen tool contract table and the category → handler
// bindings. Contracts are declared once at startup; handlers are an open set
// registered by category.
type Registry struct {
	mu       sync.RWMutex
	schemas  map[string]*Schema
	handlers map[config.ToolCategory]Handler
}

// NewRegistry builds a registry from the loaded tool configuration.
func NewRegistry(toolConfigs map[string]*config.ToolSchemaConfig) *Registry {
	r := &Registry{
		schemas:  make(map[string]*Schema, len(toolConfigs)),
		handlers: make(map[config.ToolCategory]Handler),
	}
	for name, tc := range toolConfigs {
		r.schemas[name] = &Schema{
			Name:        name,
			Description: tc.Description,
			Category:    tc.Category,
			Parameters:  tc.Parameters,
			BaseCost:    tc.BaseCost,
			CostPerUnit: tc.CostPerUnit,
			CostUnit:    tc.CostUnit,

			RequiresApprovalAbove: tc.RequiresApprovalAbove,
			AllowedDepartments:    tc.AllowedDepartments,
		}
	}
	return r
}

// Get returns the schema for a tool name.
func (r *Registry) Get(name string) (*Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	schema, ok := r.schemas[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return schema, nil
}

// List returns every registered schema.
func (r *Registry) List() []*Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Schema, 0, len(r.schemas))
	for _, s := range r.schemas {
		out = append(out, s)
	}
	return out
}

// BindHandler registers the handler serving one tool category.
func (r *Registry) BindHandler(category config.ToolCategory, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[category] = h
}

// HandlerFor returns the handler bound to the tool's category.
func (r *Registry) HandlerFor(schema *Schema) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[schema.Category]
	if !ok {
		return nil, fmt.Errorf("%w: category %s", ErrToolNotInitialized, schema.Category)
	}
	return h, nil
}
