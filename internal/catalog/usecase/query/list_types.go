package query

import "github.com/vastrika/storefront/internal/catalog/sample"

// ListTypesHandler serves the static saree type catalog
type ListTypesHandler struct{}

func NewListTypesHandler() *ListTypesHandler {
	return &ListTypesHandler{}
}

// Handle returns all saree types
func (h *ListTypesHandler) Handle() []sample.SareeType {
	return sample.SareeTypes()
}

// ListStatesHandler serves the static state catalog
type ListStatesHandler struct{}

func NewListStatesHandler() *ListStatesHandler {
	return &ListStatesHandler{}
}

// Handle returns all states with their weaving centers
func (h *ListStatesHandler) Handle() []sample.State {
	return sample.States()
}
