package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfmartins/revenda/internal/encoding"
)

func decode(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got)
}

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := "Data;Histórico;Valor\n10/05/2024;Transferência recebida;1.250,00\n"

	assert.Equal(t, input, decode(t, []byte(input)))
}

func TestNewUTF8Reader_Latin1(t *testing.T) {
	// "Histórico" in ISO-8859-1 / Windows-1252: ó = 0xF3.
	input := []byte{
		'D', 'a', 't', 'a', ';',
		'H', 'i', 's', 't', 0xF3, 'r', 'i', 'c', 'o', '\n',
	}

	assert.Equal(t, "Data;Histórico\n", decode(t, input))
}

func TestNewUTF8Reader_UTF8BOMStripped(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Data;Histórico\n")...)

	assert.Equal(t, "Data;Histórico\n", decode(t, input))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	// "Data" as UTF-16 LE with BOM.
	input := []byte{0xFF, 0xFE, 'D', 0, 'a', 0, 't', 0, 'a', 0}

	assert.Equal(t, "Data", decode(t, input))
}

func TestNewUTF8Reader_Empty(t *testing.T) {
	assert.Equal(t, "", decode(t, nil))
}
