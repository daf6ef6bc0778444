package services

import (
	"context"
	"testing"

	"referral-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCooperationStore mimics the toggle semantics of the real table
type fakeCooperationStore struct {
	edges  map[[2]int]bool
	nextID int
}

func newFakeCooperationStore() *fakeCooperationStore {
	return &fakeCooperationStore{edges: make(map[[2]int]bool)}
}

func (f *fakeCooperationStore) List(ctx context.Context) ([]*models.Cooperation, error) {
	var coops []*models.Cooperation
	for edge := range f.edges {
		f.nextID++
		coops = append(coops, &models.Cooperation{
			ID:                f.nextID,
			CompanyID:         edge[0],
			PropertyManagerID: edge[1],
		})
	}
	return coops, nil
}

func (f *fakeCooperationStore) Toggle(ctx context.Context, companyID, propertyManagerID int) error {
	key := [2]int{companyID, propertyManagerID}
	if f.edges[key] {
		delete(f.edges, key)
	} else {
		f.edges[key] = true
	}
	return nil
}

func TestToggleFlipsEdge(t *testing.T) {
	store := newFakeCooperationStore()
	svc := NewCooperationService(store)
	ctx := context.Background()

	require.NoError(t, svc.Toggle(ctx, 1, 2))
	assert.True(t, store.edges[[2]int{1, 2}])

	require.NoError(t, svc.Toggle(ctx, 1, 2))
	assert.False(t, store.edges[[2]int{1, 2}])

	// The reverse pairing is a different edge
	require.NoError(t, svc.Toggle(ctx, 2, 1))
	assert.True(t, store.edges[[2]int{2, 1}])
}
