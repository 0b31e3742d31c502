package repo_test

import (
	"testing"

	"github.com/rogerio-castellano/rental-tracker/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedForSort(t *testing.T) *repo.InMemoryProductRepository {
	t.Helper()
	r := repo.NewInMemoryProductRepository(10)
	for _, p := range []struct {
		id    int
		name  string
		price string
	}{
		{4, "Saw", "19.50"},
		{2, "Drill", "49.99"},
		{7, "Hammer", "12.00"},
		{1, "Ladder", "19.50"},
		{3, "Clamp", "3.25"},
	} {
		_, err := r.Create(product(p.id, p.name, p.price, 1))
		require.NoError(t, err)
	}
	return r
}

func TestSortBy(t *testing.T) {
	tests := []struct {
		key  repo.SortKey
		want []int
	}{
		{repo.SortByID, []int{1, 2, 3, 4, 7}},
		{repo.SortByName, []int{3, 2, 7, 1, 4}},
		{repo.SortByPrice, []int{3, 7, 4, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			r := seedForSort(t)
			require.NoError(t, r.SortBy(tt.key))
			all, _ := r.GetAll()
			assert.Equal(t, tt.want, ids(all))
		})
	}
}

func TestSortByPrice_NonDecreasingSameSet(t *testing.T) {
	r := seedForSort(t)
	before, _ := r.GetAll()

	require.NoError(t, r.SortBy(repo.SortByPrice))
	after, _ := r.GetAll()

	for i := 1; i < len(after); i++ {
		assert.True(t, after[i-1].Price.LessThanOrEqual(after[i].Price),
			"price at %d (%s) is above price at %d (%s)", i-1, after[i-1].Price, i, after[i].Price)
	}
	assert.ElementsMatch(t, ids(before), ids(after))
}

func TestSortBy_InvalidKey(t *testing.T) {
	r := seedForSort(t)
	before, _ := r.GetAll()

	assert.ErrorIs(t, r.SortBy("quantity"), repo.ErrInvalidSortKey)
	after, _ := r.GetAll()
	assert.Equal(t, before, after)
}

func TestParseSortKey(t *testing.T) {
	k, err := repo.ParseSortKey(" Price ")
	require.NoError(t, err)
	assert.Equal(t, repo.SortByPrice, k)

	_, err = repo.ParseSortKey("weight")
	assert.ErrorIs(t, err, repo.ErrInvalidSortKey)
}
