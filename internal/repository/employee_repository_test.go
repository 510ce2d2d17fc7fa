package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-directory/internal/domain"
	"github.com/spec-kit/employee-directory/internal/persistence"
)

const testKey = "employees"

// flakyStore fails every Put while failPut is set.
type flakyStore struct {
	*persistence.MemoryStore
	failPut bool
}

func (f *flakyStore) Put(ctx context.Context, key string, value []byte) error {
	if f.failPut {
		return errors.New("quota exceeded")
	}
	return f.MemoryStore.Put(ctx, key, value)
}

func seedBlob(t *testing.T, blobs persistence.BlobStore, employees []domain.Employee) {
	t.Helper()
	raw, err := json.Marshal(employees)
	require.NoError(t, err)
	require.NoError(t, blobs.Put(context.Background(), testKey, raw))
}

func stored(t *testing.T, blobs persistence.BlobStore) []domain.Employee {
	t.Helper()
	raw, err := blobs.Get(context.Background(), testKey)
	require.NoError(t, err)
	var out []domain.Employee
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func twoRecordRepo(t *testing.T) (EmployeeRepository, *persistence.MemoryStore) {
	t.Helper()
	blobs := persistence.NewMemoryStore()
	seedBlob(t, blobs, []domain.Employee{
		{ID: 1, FullName: "Ann", Gender: domain.GenderFemale, DateOfBirth: "1990-01-01", State: "Ohio", Active: true},
		{ID: 2, FullName: "Bob", Gender: domain.GenderMale, DateOfBirth: "1991-02-02", State: "Utah", Active: false},
	})
	repo := NewEmployeeRepository(blobs, testKey)
	require.NoError(t, repo.Load(context.Background()))
	return repo, blobs
}

func cid() domain.Draft {
	return domain.Draft{FullName: "Cid", DateOfBirth: "2000-01-01", State: "Texas", Gender: domain.GenderMale, Active: true}
}

func TestLoadSeedsWhenEmpty(t *testing.T) {
	blobs := persistence.NewMemoryStore()
	repo := NewEmployeeRepository(blobs, testKey)
	require.NoError(t, repo.Load(context.Background()))

	list := repo.List(context.Background())
	require.Len(t, list, 10)
	assert.Equal(t, "John Smith", list[0].FullName)
	assert.Equal(t, domain.GenderMale, list[0].Gender)
	assert.Equal(t, "1980-01-01", list[0].DateOfBirth)
	assert.False(t, list[0].Active)
	assert.Equal(t, "Jane Johnson", list[1].FullName)
	assert.Equal(t, domain.GenderFemale, list[1].Gender)
	assert.Equal(t, "Texas", list[1].State)
	assert.True(t, list[1].Active)
	assert.Equal(t, "Ashley Martinez", list[9].FullName)
	assert.Equal(t, "https://i.pravatar.cc/150?img=10", list[9].ProfileImage)

	assert.Equal(t, list, stored(t, blobs), "seed must be persisted")
}

func TestLoadRejectsMalformedBlob(t *testing.T) {
	blobs := persistence.NewMemoryStore()
	require.NoError(t, blobs.Put(context.Background(), testKey, []byte("{not json")))

	err := NewEmployeeRepository(blobs, testKey).Load(context.Background())
	require.Error(t, err)
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	blobs := persistence.NewMemoryStore()
	seedBlob(t, blobs, []domain.Employee{{ID: 4, FullName: "A"}, {ID: 4, FullName: "B"}})

	err := NewEmployeeRepository(blobs, testKey).Load(context.Background())
	require.ErrorContains(t, err, "duplicate id 4")
}

func TestAddAssignsNextID(t *testing.T) {
	ctx := context.Background()
	repo, blobs := twoRecordRepo(t)

	created, err := repo.Add(ctx, cid())
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
	assert.Equal(t, "Cid", created.FullName)

	list := repo.List(ctx)
	require.Len(t, list, 3)
	assert.Equal(t, created, list[2], "insertion order is preserved")
	assert.Equal(t, list, stored(t, blobs))
}

func TestAddIntoEmptyCollectionStartsAtOne(t *testing.T) {
	ctx := context.Background()
	blobs := persistence.NewMemoryStore()
	seedBlob(t, blobs, []domain.Employee{})
	repo := NewEmployeeRepository(blobs, testKey)
	require.NoError(t, repo.Load(ctx))

	created, err := repo.Add(ctx, cid())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestIDsAreNotReusedAfterDeletingMax(t *testing.T) {
	ctx := context.Background()
	repo, _ := twoRecordRepo(t)

	_, found, err := repo.Delete(ctx, 2)
	require.NoError(t, err)
	require.True(t, found)

	created, err := repo.Add(ctx, cid())
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
}

func TestAddThenDeleteRestoresContent(t *testing.T) {
	ctx := context.Background()
	repo, blobs := twoRecordRepo(t)
	before := repo.List(ctx)

	created, err := repo.Add(ctx, cid())
	require.NoError(t, err)
	removed, found, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, created, removed)

	assert.Equal(t, before, repo.List(ctx))
	assert.Equal(t, before, stored(t, blobs))
}

func TestUpdateReplacesFieldsKeepsID(t *testing.T) {
	ctx := context.Background()
	repo, _ := twoRecordRepo(t)

	updated, found, err := repo.Update(ctx, 1, cid())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, "Cid", updated.FullName)
	assert.Equal(t, "Texas", updated.State)

	got, ok := repo.Get(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, updated, got)
	assert.Equal(t, int64(1), repo.List(ctx)[0].ID, "position is preserved")
}

func TestUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	repo, blobs := twoRecordRepo(t)
	before := stored(t, blobs)

	_, found, err := repo.Update(ctx, 99, cid())
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = repo.Delete(ctx, 99)
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = repo.ToggleStatus(ctx, 99)
	require.NoError(t, err)
	assert.False(t, found)

	_, ok := repo.Get(ctx, 99)
	assert.False(t, ok)
	assert.Equal(t, before, stored(t, blobs))
}

func TestToggleStatusIsItsOwnInverse(t *testing.T) {
	ctx := context.Background()
	repo, _ := twoRecordRepo(t)

	first, found, err := repo.ToggleStatus(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, first.Active)

	second, _, err := repo.ToggleStatus(ctx, 1)
	require.NoError(t, err)
	assert.True(t, second.Active)
	assert.Equal(t, "Ann", second.FullName)
}

func TestListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo, _ := twoRecordRepo(t)

	list := repo.List(ctx)
	list[0].FullName = "mutated"

	got, _ := repo.Get(ctx, 1)
	assert.Equal(t, "Ann", got.FullName)
}

func TestFailedPersistLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	blobs := &flakyStore{MemoryStore: persistence.NewMemoryStore()}
	seedBlob(t, blobs, []domain.Employee{{ID: 1, FullName: "Ann", Active: true}})
	repo := NewEmployeeRepository(blobs, testKey)
	require.NoError(t, repo.Load(ctx))
	before := repo.List(ctx)

	blobs.failPut = true
	_, err := repo.Add(ctx, cid())
	require.ErrorContains(t, err, "quota exceeded")
	_, _, err = repo.ToggleStatus(ctx, 1)
	require.Error(t, err)
	_, _, err = repo.Delete(ctx, 1)
	require.Error(t, err)
	assert.Equal(t, before, repo.List(ctx))

	blobs.failPut = false
	created, err := repo.Add(ctx, cid())
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID, "failed adds do not consume ids")
}

func TestLoadPersistsSeedFailure(t *testing.T) {
	blobs := &flakyStore{MemoryStore: persistence.NewMemoryStore(), failPut: true}
	err := NewEmployeeRepository(blobs, testKey).Load(context.Background())
	require.ErrorContains(t, err, "persist seed employees")
}
