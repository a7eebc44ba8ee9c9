package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellerhub/internal/domain"
)

// fakeConnectionRepo is an in-memory ConnectionRepository for sync tests
type fakeConnectionRepo struct {
	conns map[uuid.UUID]*domain.StoreConnection
}

func newFakeConnectionRepo() *fakeConnectionRepo {
	return &fakeConnectionRepo{conns: make(map[uuid.UUID]*domain.StoreConnection)}
}

func (r *fakeConnectionRepo) Create(_ context.Context, conn *domain.StoreConnection) error {
	r.conns[conn.ID] = conn
	return nil
}

func (r *fakeConnectionRepo) ListByUser(_ context.Context, userID uuid.UUID, filter domain.ConnectionFilter) ([]*domain.StoreConnection, error) {
	var out []*domain.StoreConnection
	for _, conn := range r.conns {
		if conn.UserID != userID {
			continue
		}
		if filter.StoreType != "" && conn.StoreType != filter.StoreType {
			continue
		}
		if filter.IsActive != nil && conn.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, conn)
	}
	return out, nil
}

func (r *fakeConnectionRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, conn := range r.conns {
		if conn.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeConnectionRepo) GetByID(_ context.Context, id, userID uuid.UUID) (*domain.StoreConnection, error) {
	conn, ok := r.conns[id]
	if !ok || conn.UserID != userID {
		return nil, domain.ErrNotFound
	}
	copied := *conn
	return &copied, nil
}

func (r *fakeConnectionRepo) GetActiveByType(_ context.Context, userID uuid.UUID, storeType string) (*domain.StoreConnection, error) {
	for _, conn := range r.conns {
		if conn.UserID == userID && conn.StoreType == storeType && conn.IsActive {
			copied := *conn
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeConnectionRepo) Update(_ context.Context, conn *domain.StoreConnection) error {
	if _, ok := r.conns[conn.ID]; !ok {
		return domain.ErrNotFound
	}
	r.conns[conn.ID] = conn
	return nil
}

func (r *fakeConnectionRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	conn, ok := r.conns[id]
	if !ok || conn.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.conns, id)
	return nil
}

func (r *fakeConnectionRepo) TouchLastSync(_ context.Context, id uuid.UUID) error {
	conn, ok := r.conns[id]
	if !ok {
		return domain.ErrNotFound
	}
	now := time.Now()
	conn.LastSyncAt = &now
	return nil
}

func (r *fakeConnectionRepo) ListStale(_ context.Context, cutoff time.Time) ([]*domain.StoreConnection, error) {
	var out []*domain.StoreConnection
	for _, conn := range r.conns {
		if !conn.IsActive {
			continue
		}
		if conn.LastSyncAt == nil || conn.LastSyncAt.Before(cutoff) {
			out = append(out, conn)
		}
	}
	return out, nil
}

// fakeProductRepo records upserted products keyed by (connection, external id)
type fakeProductRepo struct {
	products map[string]*domain.SyncedProduct
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*domain.SyncedProduct)}
}

func (r *fakeProductRepo) Upsert(_ context.Context, product *domain.SyncedProduct) error {
	r.products[product.ConnectionID.String()+"/"+product.ExternalID] = product
	return nil
}

func (r *fakeProductRepo) ListByUser(_ context.Context, userID uuid.UUID, _ domain.ProductFilter, _, _ int) ([]*domain.SyncedProduct, error) {
	var out []*domain.SyncedProduct
	for _, p := range r.products {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range r.products {
		if p.UserID == userID {
			n++
		}
	}
	return n, nil
}

// fakeGateway scripts credential validation and catalog fetches per store type
type fakeGateway struct {
	valid    bool
	validErr error
	catalog  map[string][]*domain.StoreProduct
	fetchErr map[string]error
}

func (g *fakeGateway) ValidateCredentials(_ context.Context, _ string, _ map[string]string) (bool, error) {
	return g.valid, g.validErr
}

func (g *fakeGateway) FetchProducts(_ context.Context, storeType string, _ map[string]string) ([]*domain.StoreProduct, error) {
	if err := g.fetchErr[storeType]; err != nil {
		return nil, err
	}
	return g.catalog[storeType], nil
}

func seedConnection(repo *fakeConnectionRepo, userID uuid.UUID, storeType string, active bool) *domain.StoreConnection {
	conn := &domain.StoreConnection{
		ID:             uuid.New(),
		UserID:         userID,
		StoreType:      storeType,
		StoreName:      "Loja Teste",
		APICredentials: map[string]string{"api_key": "k"},
		IsActive:       active,
	}
	repo.conns[conn.ID] = conn
	return conn
}

func TestConnectionService_Create(t *testing.T) {
	repo := newFakeConnectionRepo()
	gateway := &fakeGateway{valid: true}
	svc := NewConnectionService(repo, newFakeProductRepo(), gateway)

	userID := uuid.New()
	conn, err := svc.Create(context.Background(), userID, "shopee", "Minha Loja", map[string]string{"api_key": "k"})
	require.NoError(t, err)
	assert.Equal(t, "shopee", conn.StoreType)
	assert.True(t, conn.IsActive)
	assert.Len(t, repo.conns, 1)
}

func TestConnectionService_Create_DuplicateActiveType(t *testing.T) {
	repo := newFakeConnectionRepo()
	gateway := &fakeGateway{valid: true}
	svc := NewConnectionService(repo, newFakeProductRepo(), gateway)

	userID := uuid.New()
	seedConnection(repo, userID, "shopee", true)

	_, err := svc.Create(context.Background(), userID, "shopee", "Outra Loja", map[string]string{"api_key": "k"})
	assert.ErrorIs(t, err, domain.ErrConnectionExists)
}

func TestConnectionService_Create_InactiveDuplicateAllowed(t *testing.T) {
	repo := newFakeConnectionRepo()
	gateway := &fakeGateway{valid: true}
	svc := NewConnectionService(repo, newFakeProductRepo(), gateway)

	userID := uuid.New()
	seedConnection(repo, userID, "shopee", false)

	_, err := svc.Create(context.Background(), userID, "shopee", "Loja Nova", map[string]string{"api_key": "k"})
	assert.NoError(t, err)
}

func TestConnectionService_Create_InvalidCredentials(t *testing.T) {
	repo := newFakeConnectionRepo()
	gateway := &fakeGateway{valid: false}
	svc := NewConnectionService(repo, newFakeProductRepo(), gateway)

	_, err := svc.Create(context.Background(), uuid.New(), "amazon", "Loja", map[string]string{"api_key": "bad"})
	assert.ErrorIs(t, err, domain.ErrInvalidStoreCredentials)
	assert.Empty(t, repo.conns)
}

func TestConnectionService_Sync(t *testing.T) {
	repo := newFakeConnectionRepo()
	products := newFakeProductRepo()
	userID := uuid.New()
	conn := seedConnection(repo, userID, "mercadolivre", true)

	gateway := &fakeGateway{
		valid: true,
		catalog: map[string][]*domain.StoreProduct{
			"mercadolivre": {
				{ExternalID: "MLB-1", Name: "Fone Bluetooth", Price: 99.90, StockQuantity: 12, Category: "eletronicos"},
				{ExternalID: "MLB-2", Name: "Capa de Celular", Price: 19.90, StockQuantity: 40, Category: "acessorios"},
			},
		},
	}
	svc := NewConnectionService(repo, products, gateway)

	synced, err := svc.Sync(context.Background(), conn.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, synced)
	assert.Len(t, products.products, 2)
	require.NotNil(t, repo.conns[conn.ID].LastSyncAt)

	p := products.products[conn.ID.String()+"/MLB-1"]
	require.NotNil(t, p)
	assert.Equal(t, userID, p.UserID)
	assert.Equal(t, 99.90, p.Price)
}

func TestConnectionService_Sync_InactiveConnection(t *testing.T) {
	repo := newFakeConnectionRepo()
	userID := uuid.New()
	conn := seedConnection(repo, userID, "mercadolivre", false)

	svc := NewConnectionService(repo, newFakeProductRepo(), &fakeGateway{valid: true})

	_, err := svc.Sync(context.Background(), conn.ID, userID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConnectionService_Sync_WrongUser(t *testing.T) {
	repo := newFakeConnectionRepo()
	conn := seedConnection(repo, uuid.New(), "shopee", true)

	svc := NewConnectionService(repo, newFakeProductRepo(), &fakeGateway{valid: true})

	_, err := svc.Sync(context.Background(), conn.ID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConnectionService_SyncStale(t *testing.T) {
	repo := newFakeConnectionRepo()
	products := newFakeProductRepo()
	userID := uuid.New()

	// Never synced, should be swept
	stale := seedConnection(repo, userID, "shopee", true)
	// Fresh sync, should be left alone
	fresh := seedConnection(repo, userID, "amazon", true)
	now := time.Now()
	fresh.LastSyncAt = &now
	// Broken store, sweep must log and continue
	broken := seedConnection(repo, userID, "magalu", true)

	gateway := &fakeGateway{
		valid: true,
		catalog: map[string][]*domain.StoreProduct{
			"shopee": {{ExternalID: "SP-1", Name: "Mochila", Price: 149.00, StockQuantity: 5}},
		},
		fetchErr: map[string]error{
			"magalu": errors.New("store unavailable"),
		},
	}
	svc := NewConnectionService(repo, products, gateway)

	err := svc.SyncStale(context.Background(), 6*time.Hour)
	require.NoError(t, err)

	assert.NotNil(t, repo.conns[stale.ID].LastSyncAt)
	assert.Nil(t, repo.conns[broken.ID].LastSyncAt)
	assert.Len(t, products.products, 1)
}

func TestConnectionService_Update_ReactivateDuplicateActiveType(t *testing.T) {
	repo := newFakeConnectionRepo()
	userID := uuid.New()
	seedConnection(repo, userID, "shopee", true)
	inactive := seedConnection(repo, userID, "shopee", false)

	svc := NewConnectionService(repo, newFakeProductRepo(), &fakeGateway{valid: true})

	active := true
	_, err := svc.Update(context.Background(), inactive.ID, userID, nil, nil, &active)
	assert.ErrorIs(t, err, domain.ErrConnectionExists)
	assert.False(t, repo.conns[inactive.ID].IsActive)
}

func TestConnectionService_Update_Reactivate(t *testing.T) {
	repo := newFakeConnectionRepo()
	userID := uuid.New()
	conn := seedConnection(repo, userID, "shopee", false)

	svc := NewConnectionService(repo, newFakeProductRepo(), &fakeGateway{valid: true})

	active := true
	updated, err := svc.Update(context.Background(), conn.ID, userID, nil, nil, &active)
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
}

func TestConnectionService_Update_RevalidatesCredentials(t *testing.T) {
	repo := newFakeConnectionRepo()
	userID := uuid.New()
	conn := seedConnection(repo, userID, "shopee", true)

	svc := NewConnectionService(repo, newFakeProductRepo(), &fakeGateway{valid: false})

	_, err := svc.Update(context.Background(), conn.ID, userID, nil, map[string]string{"api_key": "new"}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidStoreCredentials)
	assert.Equal(t, "k", repo.conns[conn.ID].APICredentials["api_key"])
}
