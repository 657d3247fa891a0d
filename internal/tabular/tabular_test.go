package tabular_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfcarvalho/posto/internal/tabular"
)

func TestDecode_SniffsSemicolon(t *testing.T) {
	table := tabular.Decode("a;b;c\n1;2;3\n")

	require.False(t, table.Empty())
	assert.Equal(t, []string{"a", "b", "c"}, table.Headers)
	assert.Equal(t, []string{"1", "2", "3"}, table.Rows[0].Values)
}

func TestDecode_SniffsComma(t *testing.T) {
	table := tabular.Decode("a,b,c\n1,2,3\n")

	require.False(t, table.Empty())
	assert.Equal(t, []string{"a", "b", "c"}, table.Headers)
	assert.Equal(t, []string{"1", "2", "3"}, table.Rows[0].Values)
}

func TestDecode_SemicolonWinsWhenMoreFrequent(t *testing.T) {
	// A stray comma inside a field must not flip detection when semicolons dominate.
	table := tabular.Decode("data;bico, extra;valor\nx;y;z\n")

	require.False(t, table.Empty())
	assert.Len(t, table.Headers, 3)
}

func TestDecode_StripsBOM(t *testing.T) {
	table := tabular.Decode("\ufeffdata,valor\n05/12/2024,10\n")

	require.False(t, table.Empty())
	assert.Equal(t, "data", table.Headers[0])
}

func TestDecode_LowercasesAndUnquotesHeaders(t *testing.T) {
	table := tabular.Decode(`"Data";'BICO' ; Valor ` + "\n1;2;3\n")

	require.False(t, table.Empty())
	assert.Equal(t, []string{"data", "bico", "valor"}, table.Headers)
}

func TestDecode_DropsBlankLines(t *testing.T) {
	table := tabular.Decode("a,b\n\n\r\n1,2\n\n3,4\n")

	require.False(t, table.Empty())
	assert.Len(t, table.Rows, 2)
}

func TestDecode_RequiresHeaderAndData(t *testing.T) {
	assert.True(t, tabular.Decode("").Empty())
	assert.True(t, tabular.Decode("only a header\n").Empty())
	assert.True(t, tabular.Decode("\n\n \n").Empty())
}

func TestRow_At(t *testing.T) {
	table := tabular.Decode("a,b\n1,2\n")

	row := table.Rows[0]
	assert.Equal(t, "1", row.At(0))
	assert.Equal(t, "2", row.At(1))
	assert.Equal(t, "", row.At(5))
	assert.Equal(t, "", row.At(-1))
}

func TestRow_GetAliasFallback(t *testing.T) {
	table := tabular.Decode("data,valor,total\n05/12/2024,,99\n")

	row := table.Rows[0]
	// "valor" is present but empty, so lookup falls through to "total".
	assert.Equal(t, "99", row.Get("valor", "total", "price"))
	assert.Equal(t, "", row.Get("missing"))
}

func TestDecode_ShortRowsKeepPositionalValues(t *testing.T) {
	table := tabular.Decode("a;b;c\n1;2\n")

	row := table.Rows[0]
	assert.Equal(t, "2", row.At(1))
	assert.Equal(t, "", row.At(2))
	assert.Equal(t, "", row.Get("c"))
}
