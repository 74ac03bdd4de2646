package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessPayloadMalformadoNoReintenta(t *testing.T) {
	w := NewRecordatorioWorker(nil)

	// Malformed jobs return nil so the pool never retries them.
	err := w.Process(context.Background(), json.RawMessage(`{esto no es json`))
	assert.NoError(t, err)
}

func TestProcessSinEmailSeDescarta(t *testing.T) {
	w := NewRecordatorioWorker(nil)

	raw, err := json.Marshal(RecordatorioPayload{ContactoNombre: "Juan Perez", Fecha: "2025-08-29"})
	require.NoError(t, err)

	assert.NoError(t, w.Process(context.Background(), raw))
}
