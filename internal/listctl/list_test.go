package listctl

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	id        string
	name      string
	createdAt time.Time
}

func (i testItem) EntityID() string { return i.id }

func (i testItem) EntityName() string { return i.name }

func (i testItem) EntityCreatedAt() time.Time { return i.createdAt }

func newTestItems(count int) []testItem {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	items := make([]testItem, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, testItem{
			id:        fmt.Sprintf("id-%02d", i+1),
			name:      fmt.Sprintf("Item %02d", i+1),
			createdAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	return items
}

func loadItems(t *testing.T, list *List[testItem], items []testItem) {
	t.Helper()
	err := list.Load(context.Background(), func(context.Context) ([]testItem, error) {
		return items, nil
	})
	require.NoError(t, err)
}

func TestList_Load(t *testing.T) {
	t.Run("nil result becomes an empty collection", func(t *testing.T) {
		list := New[testItem]()
		err := list.Load(context.Background(), func(context.Context) ([]testItem, error) {
			return nil, nil
		})
		require.NoError(t, err)
		assert.NotNil(t, list.Items())
		assert.Empty(t, list.Items())
	})

	t.Run("previous collection survives a failed reload", func(t *testing.T) {
		list := New[testItem]()
		loadItems(t, list, newTestItems(3))

		err := list.Load(context.Background(), func(context.Context) ([]testItem, error) {
			return nil, errors.New("boom")
		})
		require.Error(t, err)
		assert.Len(t, list.Items(), 3)
	})
}

func TestList_Search(t *testing.T) {
	items := []testItem{
		{id: "1", name: "Olma"},
		{id: "2", name: "olmazor"},
		{id: "3", name: "Anor"},
	}

	tests := []struct {
		name      string
		term      string
		wantNames []string
	}{
		{
			name:      "case-insensitive substring",
			term:      "olma",
			wantNames: []string{"Olma", "olmazor"},
		},
		{
			name:      "no match yields empty, not base collection",
			term:      "zzz",
			wantNames: []string{},
		},
		{
			name:      "empty term restores base collection",
			term:      "",
			wantNames: []string{"Anor", "Olma", "olmazor"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			list := New[testItem]()
			loadItems(t, list, items)
			list.SortBy(SortByName)

			list.Search("anything")
			list.Search(tc.term)

			got := make([]string, 0, len(list.Active()))
			for _, item := range list.Active() {
				got = append(got, item.name)
			}
			assert.Equal(t, tc.wantNames, got)
		})
	}
}

func TestList_Active_Sorting(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []testItem{
		{id: "1", name: "banan", createdAt: base.Add(time.Hour)},
		{id: "2", name: "Anor", createdAt: base.Add(3 * time.Hour)},
		{id: "3", name: "olma", createdAt: base.Add(2 * time.Hour)},
	}

	list := New[testItem]()
	loadItems(t, list, items)

	// Default: newest first.
	got := list.Active()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"2", "3", "1"}, []string{got[0].id, got[1].id, got[2].id})

	// Name: case-insensitive ascending.
	list.SortBy(SortByName)
	got = list.Active()
	assert.Equal(t, []string{"Anor", "banan", "olma"}, []string{got[0].name, got[1].name, got[2].name})

	// The base collection order is untouched.
	assert.Equal(t, "1", list.Items()[0].id)
}

func TestList_Pagination(t *testing.T) {
	list := New[testItem]()
	loadItems(t, list, newTestItems(12))
	list.SortBy(SortByName)

	assert.Equal(t, 2, list.TotalPages())
	assert.Equal(t, 1, list.Page())
	require.Len(t, list.Window(), 10)
	assert.Equal(t, "Item 01", list.Window()[0].name)

	list.NextPage()
	assert.Equal(t, 2, list.Page())
	require.Len(t, list.Window(), 2)
	assert.Equal(t, "Item 11", list.Window()[0].name)

	// Clamped at the last page.
	list.NextPage()
	assert.Equal(t, 2, list.Page())

	list.PrevPage()
	list.PrevPage()
	list.PrevPage()
	assert.Equal(t, 1, list.Page())
}

func TestList_Pagination_PageClampsAfterShrink(t *testing.T) {
	list := New[testItem]()
	loadItems(t, list, newTestItems(12))
	list.SetPage(2)

	// A search that shrinks the active list pulls the page back in range.
	list.Search("Item 01")
	assert.Equal(t, 1, list.Page())
	assert.Equal(t, 1, list.TotalPages())
	require.Len(t, list.Window(), 1)

	list.ClearSearch()
	assert.Equal(t, 2, list.Page())
}

func TestList_ApplyMutations(t *testing.T) {
	list := New[testItem]()
	loadItems(t, list, newTestItems(3))

	t.Run("create prepends", func(t *testing.T) {
		list.ApplyCreate(testItem{id: "new", name: "Yangi"})
		assert.Equal(t, "new", list.Items()[0].id)
		assert.Len(t, list.Items(), 4)
	})

	t.Run("update replaces by id", func(t *testing.T) {
		list.ApplyUpdate(testItem{id: "id-02", name: "Renamed"})
		item, ok := list.Find("id-02")
		require.True(t, ok)
		assert.Equal(t, "Renamed", item.name)
		assert.Len(t, list.Items(), 4)
	})

	t.Run("delete removes by id", func(t *testing.T) {
		list.ApplyDelete("id-03")
		_, ok := list.Find("id-03")
		assert.False(t, ok)
		assert.Len(t, list.Items(), 3)
	})
}

func TestList_SearchRecomputedAfterMutation(t *testing.T) {
	list := New[testItem]()
	loadItems(t, list, []testItem{
		{id: "1", name: "Olma"},
		{id: "2", name: "Anor"},
	})
	list.Search("olma")
	require.Len(t, list.Active(), 1)

	// A rename out of the filter removes the row from the filtered view.
	list.ApplyUpdate(testItem{id: "1", name: "Shaftoli"})
	assert.Empty(t, list.Active())

	// A create that matches the filter shows up immediately.
	list.ApplyCreate(testItem{id: "3", name: "olmazor"})
	require.Len(t, list.Active(), 1)
	assert.Equal(t, "3", list.Active()[0].id)

	assert.Equal(t, "olma", list.SearchTerm())
}
