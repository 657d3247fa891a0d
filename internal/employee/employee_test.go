package employee_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dfcarvalho/posto/internal/employee"
	"github.com/dfcarvalho/posto/internal/tabular"
)

func TestMerge_Upsert(t *testing.T) {
	dir := employee.Merge(nil, []employee.Entry{{CardID: "X1", DisplayName: "Ana"}})
	require.Len(t, dir, 1)

	// Re-importing the same card id overwrites the name, keeping one entry.
	dir = employee.Merge(dir, []employee.Entry{{CardID: "X1", DisplayName: "Ana Maria"}})
	require.Len(t, dir, 1)
	assert.Equal(t, "Ana Maria", dir[0].DisplayName)
}

func TestMerge_AppendsNewAndKeepsOrder(t *testing.T) {
	dir := employee.Directory{
		{CardID: "X1", DisplayName: "Ana"},
		{CardID: "X2", DisplayName: "Bruno"},
	}

	merged := employee.Merge(dir, []employee.Entry{
		{CardID: "X2", DisplayName: "Bruno Silva"},
		{CardID: "X3", DisplayName: "Carla"},
	})

	require.Len(t, merged, 3)
	assert.Equal(t, "X1", merged[0].CardID)
	assert.Equal(t, "Bruno Silva", merged[1].DisplayName)
	assert.Equal(t, "X3", merged[2].CardID)

	// The input directory must not be mutated.
	assert.Equal(t, "Bruno", dir[1].DisplayName)
}

func TestMerge_LastWriteWinsWithinBatch(t *testing.T) {
	merged := employee.Merge(nil, []employee.Entry{
		{CardID: "X1", DisplayName: "First"},
		{CardID: "X1", DisplayName: "Second"},
	})

	require.Len(t, merged, 1)
	assert.Equal(t, "Second", merged[0].DisplayName)
}

func TestDirectory_Resolve(t *testing.T) {
	dir := employee.Directory{{CardID: "CARD7", DisplayName: "João"}}

	assert.Equal(t, "João", dir.Resolve("CARD7"))
	// Unknown cards resolve to the raw id.
	assert.Equal(t, "CARD9", dir.Resolve("CARD9"))
}

func TestDirectory_NameMap(t *testing.T) {
	dir := employee.Directory{
		{CardID: "X1", DisplayName: "Ana"},
		{CardID: "X2", DisplayName: "Ana"},
	}

	m := dir.NameMap()
	assert.Equal(t, map[string]string{"X1": "Ana", "X2": "Ana"}, m)
}

func TestResolveRow(t *testing.T) {
	type testCase struct {
		name string
		csv  string
		want []employee.Entry
	}

	tests := []testCase{
		{
			name: "ThreeCards",
			csv:  "nome;matricula;cartao1;cartao2;cartao3\nJoão Silva;123;X1;X2;X3\n",
			want: []employee.Entry{
				{CardID: "X1", DisplayName: "João Silva"},
				{CardID: "X2", DisplayName: "João Silva"},
				{CardID: "X3", DisplayName: "João Silva"},
			},
		},
		{
			name: "GapsAreSkipped",
			csv:  "nome;matricula;cartao1;cartao2;cartao3\nAna;123;;X2;\n",
			want: []employee.Entry{
				{CardID: "X2", DisplayName: "Ana"},
			},
		},
		{
			name: "NoCardsDropsRow",
			csv:  "nome;matricula;cartao1;cartao2;cartao3\nSem Cartão;123;;;\n",
			want: nil,
		},
		{
			name: "NoNameDropsRow",
			csv:  "nome;matricula;cartao1;cartao2;cartao3\n;123;X1;;\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := tabular.Decode(tt.csv)
			require.Len(t, table.Rows, 1)

			got := employee.ResolveRow(table.Rows[0])
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Directory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := employee.NewMockRepository(ctrl)
	repo.EXPECT().ListEntries(gomock.Any()).Return([]employee.Entry{
		{CardID: "X1", DisplayName: "Ana"},
	}, nil)

	svc := employee.NewService(repo)
	dir, err := svc.Directory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ana", dir.Resolve("X1"))
}

func TestService_ImportBatch_EmptyIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := employee.NewMockRepository(ctrl)

	svc := employee.NewService(repo)
	assert.NoError(t, svc.ImportBatch(context.Background(), nil))
}
