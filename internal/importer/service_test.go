package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfcarvalho/posto/internal/importer"
)

func TestImport_Refuelings(t *testing.T) {
	csv := "data;bico;valor;litros\n" +
		"05/12/2024 08:15;B1;150,00;42,50\n" +
		"05/12/2024 09:40;B2;abc;xyz\n" + // dropped: neither number parses
		"06/12/2024 10:00;B1;80,00;20,00\n"

	svc := importer.NewService()

	result, err := svc.Import(importer.KindRefuelings, strings.NewReader(csv), "admin")
	require.NoError(t, err)

	assert.Len(t, result.Refuelings, 2)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, result.Employees)

	first := result.Refuelings[0]
	assert.Equal(t, "B1", first.Nozzle)
	assert.InDelta(t, 150.00, first.Amount, 0.001)
	assert.Equal(t, "admin", first.OwnerID)
}

func TestImport_RefuelingsWithBOMAndCommas(t *testing.T) {
	csv := "\ufeffdata,valor,litros\n05/12/2024,10.50,5.25\n"

	svc := importer.NewService()

	result, err := svc.Import(importer.KindRefuelings, strings.NewReader(csv), "admin")
	require.NoError(t, err)
	require.Len(t, result.Refuelings, 1)
	assert.InDelta(t, 10.50, result.Refuelings[0].Amount, 0.001)
}

func TestImport_Employees(t *testing.T) {
	csv := "nome;matricula;cartao1;cartao2;cartao3\n" +
		"João Silva;1;CARD7;CARD8;\n" +
		"Ana;2;;;\n" + // skipped: no card ids
		"Bruno;3;X1;;\n"

	svc := importer.NewService()

	result, err := svc.Import(importer.KindEmployees, strings.NewReader(csv), "admin")
	require.NoError(t, err)

	require.Len(t, result.Employees, 3)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, "CARD7", result.Employees[0].CardID)
	assert.Equal(t, "João Silva", result.Employees[0].DisplayName)
	assert.Equal(t, "João Silva", result.Employees[1].DisplayName)
	assert.Equal(t, "Bruno", result.Employees[2].DisplayName)
}

func TestImport_NoValidData(t *testing.T) {
	type testCase struct {
		name string
		kind importer.Kind
		csv  string
	}

	tests := []testCase{
		{name: "Empty", kind: importer.KindRefuelings, csv: ""},
		{name: "HeaderOnly", kind: importer.KindRefuelings, csv: "data;valor\n"},
		{name: "AllRowsDropped", kind: importer.KindRefuelings, csv: "data;valor;litros\nx;abc;def\n"},
		{name: "AllCellsEmpty", kind: importer.KindRefuelings, csv: "data;valor;litros\n05/12/2024;;\n"},
		{name: "NoNumericColumns", kind: importer.KindRefuelings, csv: "nome;idade\nAna;30\nBia;25\n"},
		{name: "RosterWithoutCards", kind: importer.KindEmployees, csv: "nome;m;c1;c2;c3\nAna;1;;;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := importer.NewService()

			_, err := svc.Import(tt.kind, strings.NewReader(tt.csv), "admin")
			assert.ErrorIs(t, err, importer.ErrNoValidData)
		})
	}
}

func TestImport_UnknownKind(t *testing.T) {
	svc := importer.NewService()

	_, err := svc.Import(importer.Kind("payments"), strings.NewReader("a;b\n1;2\n"), "admin")
	require.Error(t, err)
	assert.NotErrorIs(t, err, importer.ErrNoValidData)
}
