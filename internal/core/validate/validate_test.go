package validate

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"camel case", "textAlign", false},
		{"snake case", "text_align", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"inner space", "text align", true},
		{"trailing tab", "textAlign\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PropertyName(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "PropertyName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestPropertyNameField(t *testing.T) {
	require.NoError(t, PropertyNameField("entity.properties[0].name", "textAlign"))

	err := PropertyNameField("entity.properties[0].name", "")
	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "entity.properties[0].name", fieldErrs[0].Field)
}
