package api

import (
	"net/http"
	"sync"

	"github.com/invopop/jsonschema"

	"github.com/merchkit/combobuilder/internal/schema"
)

type schemaResponse struct {
	Parameters       []schema.Descriptor `json:"parameters"`
	Defaults         map[string]any      `json:"defaults"`
	DescriptorSchema *jsonschema.Schema  `json:"descriptor_schema"`
}

var schemaOnce = sync.OnceValue(func() schemaResponse {
	reflector := new(jsonschema.Reflector)
	descriptorSchema := reflector.Reflect(&schema.Descriptor{})
	descriptorSchema.Title = "Combo Parameter Descriptor"
	descriptorSchema.Description = "Shape of one entry in the combo builder parameter table"

	return schemaResponse{
		Parameters:       schema.All(),
		Defaults:         schema.Defaults(),
		DescriptorSchema: descriptorSchema,
	}
})

// handleSchema publishes the full parameter table: every configurable key,
// its constraints, its default, and the descriptor document schema.
func (s *Server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, schemaOnce())
}
