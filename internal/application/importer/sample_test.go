package importer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagetech/voyagecrm-api/internal/application/importer"
)

// The sample generator and the validators must agree: every template row,
// re-parsed, has to pass validation.
func TestSampleRoundTripPassesValidation(t *testing.T) {
	for _, kind := range importer.Kinds {
		t.Run(string(kind), func(t *testing.T) {
			data, filename, err := importer.Sample(kind)
			require.NoError(t, err)
			assert.Contains(t, filename, string(kind))

			rows, err := importer.Parse(filename, bytes.NewReader(data))
			require.NoError(t, err)
			require.NotEmpty(t, rows, "sample must contain example rows")

			for idx, row := range rows {
				assert.Empty(t, importer.Validate(kind, row, rows, idx),
					"sample row %d of kind %s must validate", idx+2, kind)
			}
		})
	}
}

func TestSampleUnknownKind(t *testing.T) {
	_, _, err := importer.Sample(importer.Kind("products"))
	assert.ErrorIs(t, err, importer.ErrUnknownKind)
}
