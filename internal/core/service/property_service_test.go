package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/priyanaka6261/property-portal-backend/internal/core/domain"
	"github.com/priyanaka6261/property-portal-backend/internal/core/ports"
)

type stubPropertyRepo struct {
	properties map[int64]*domain.Property
	nextID     int64
	countCalls int
}

func newStubPropertyRepo() *stubPropertyRepo {
	return &stubPropertyRepo{properties: make(map[int64]*domain.Property)}
}

func cloneProperty(p *domain.Property) *domain.Property {
	clone := *p
	return &clone
}

func (r *stubPropertyRepo) Create(_ context.Context, p *domain.Property) (*domain.Property, error) {
	r.nextID++
	created := cloneProperty(p)
	created.ID = r.nextID
	r.properties[created.ID] = cloneProperty(created)
	return created, nil
}

func (r *stubPropertyRepo) FindByID(_ context.Context, id int64) (*domain.Property, error) {
	p, ok := r.properties[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	return cloneProperty(p), nil
}

func (r *stubPropertyRepo) Update(_ context.Context, p *domain.Property) (*domain.Property, error) {
	if _, ok := r.properties[p.ID]; !ok {
		return nil, domain.ErrPropertyNotFound
	}
	r.properties[p.ID] = cloneProperty(p)
	return cloneProperty(p), nil
}

func (r *stubPropertyRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.properties[id]; !ok {
		return domain.ErrPropertyNotFound
	}
	delete(r.properties, id)
	return nil
}

func (r *stubPropertyRepo) FindAll(_ context.Context) ([]*domain.Property, error) {
	out := make([]*domain.Property, 0, len(r.properties))
	for _, p := range r.properties {
		out = append(out, cloneProperty(p))
	}
	return out, nil
}

func (r *stubPropertyRepo) FindByOwner(_ context.Context, ownerID int64) ([]*domain.Property, error) {
	out := make([]*domain.Property, 0)
	for _, p := range r.properties {
		if p.OwnerID == ownerID {
			out = append(out, cloneProperty(p))
		}
	}
	return out, nil
}

func (r *stubPropertyRepo) Search(_ context.Context, filter ports.SearchFilter) ([]*domain.Property, error) {
	out := make([]*domain.Property, 0)
	for _, p := range r.properties {
		if filter.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(filter.Location)) {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		out = append(out, cloneProperty(p))
	}
	return out, nil
}

func (r *stubPropertyRepo) CountByStatus(_ context.Context) (map[domain.PropertyStatus]int64, error) {
	r.countCalls++
	counts := make(map[domain.PropertyStatus]int64)
	for _, p := range r.properties {
		counts[p.Status]++
	}
	return counts, nil
}

type stubStatsCache struct {
	stored map[domain.PropertyStatus]int64
	err    error
	sets   int
}

func (c *stubStatsCache) Get(_ context.Context) (map[domain.PropertyStatus]int64, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.stored, nil
}

func (c *stubStatsCache) Set(_ context.Context, counts map[domain.PropertyStatus]int64) error {
	c.sets++
	c.stored = counts
	return nil
}

func newPropertyService(repo ports.PropertyRepository, cache StatsCache) *PropertyService {
	return NewPropertyService(repo, cache, zerolog.Nop())
}

var (
	agentClaims = domain.Claims{UserID: 1, Email: "agent@example.com", Role: domain.RoleAgent}
	adminClaims = domain.Claims{UserID: 2, Email: "admin@example.com", Role: domain.RoleAdmin}
	userClaims  = domain.Claims{UserID: 3, Email: "user@example.com", Role: domain.RoleUser}
)

func TestPropertyService_Create_Defaults(t *testing.T) {
	svc := newPropertyService(newStubPropertyRepo(), nil)

	created, err := svc.Create(context.Background(), ports.CreatePropertyInput{
		Title:    "X",
		Location: "Pune",
		Price:    1000,
	}, agentClaims)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected generated id")
	}
	if created.Status != domain.StatusAvailable {
		t.Fatalf("expected default status available, got %s", created.Status)
	}
	if created.OwnerID != agentClaims.UserID {
		t.Fatalf("expected owner %d, got %d", agentClaims.UserID, created.OwnerID)
	}
}

func TestPropertyService_Create_RoleGate(t *testing.T) {
	svc := newPropertyService(newStubPropertyRepo(), nil)

	input := ports.CreatePropertyInput{Title: "X", Location: "Pune", Price: 1}
	if _, err := svc.Create(context.Background(), input, userClaims); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for user role, got %v", err)
	}
	if _, err := svc.Create(context.Background(), input, adminClaims); err != nil {
		t.Fatalf("admin create failed: %v", err)
	}
}

func TestPropertyService_Create_Validation(t *testing.T) {
	svc := newPropertyService(newStubPropertyRepo(), nil)

	if _, err := svc.Create(context.Background(), ports.CreatePropertyInput{Location: "Pune", Price: 1}, agentClaims); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for missing title, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreatePropertyInput{Title: "X", Location: "Pune", Price: -5}, agentClaims); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for negative price, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreatePropertyInput{Title: "X", Location: "Pune", Price: 1, Status: "archived"}, agentClaims); err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func seedProperty(t *testing.T, svc *PropertyService, claims domain.Claims) *domain.Property {
	t.Helper()
	created, err := svc.Create(context.Background(), ports.CreatePropertyInput{
		Title:    "X",
		Location: "Pune",
		Price:    1000,
	}, claims)
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}
	return created
}

func TestPropertyService_Update_Authorization(t *testing.T) {
	svc := newPropertyService(newStubPropertyRepo(), nil)
	created := seedProperty(t, svc, agentClaims)

	input := ports.UpdatePropertyInput{Title: "Y", Location: "Mumbai", Price: 2000, Status: "sold"}

	// Non-owner, non-admin → Forbidden.
	if _, err := svc.Update(context.Background(), created.ID, input, userClaims); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// Owner succeeds.
	updated, err := svc.Update(context.Background(), created.ID, input, agentClaims)
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != "Y" || updated.Location != "Mumbai" || updated.Price != 2000 || updated.Status != domain.StatusSold {
		t.Fatalf("fields not overwritten: %+v", updated)
	}

	// Admin succeeds on a foreign listing.
	if _, err := svc.Update(context.Background(), created.ID, input, adminClaims); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}

	// Absent id → NotFound.
	if _, err := svc.Update(context.Background(), 9999, input, adminClaims); err != domain.ErrPropertyNotFound {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestPropertyService_Delete_Authorization(t *testing.T) {
	svc := newPropertyService(newStubPropertyRepo(), nil)
	created := seedProperty(t, svc, agentClaims)

	// Delete must authorize exactly like update.
	if _, err := svc.Delete(context.Background(), created.ID, userClaims); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	removed, err := svc.Delete(context.Background(), created.ID, agentClaims)
	if err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if removed.ID != created.ID || removed.Title != created.Title {
		t.Fatalf("expected removed record back, got %+v", removed)
	}

	if _, err := svc.Get(context.Background(), created.ID); err != domain.ErrPropertyNotFound {
		t.Fatalf("expected record gone, got %v", err)
	}

	if _, err := svc.Delete(context.Background(), created.ID, adminClaims); err != domain.ErrPropertyNotFound {
		t.Fatalf("expected ErrPropertyNotFound on second delete, got %v", err)
	}
}

func TestPropertyService_ListByOwner(t *testing.T) {
	svc := newPropertyService(newStubPropertyRepo(), nil)
	seedProperty(t, svc, agentClaims)
	seedProperty(t, svc, agentClaims)
	seedProperty(t, svc, adminClaims)

	mine, err := svc.ListByOwner(context.Background(), agentClaims)
	if err != nil {
		t.Fatalf("ListByOwner failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(mine))
	}
	for _, p := range mine {
		if p.OwnerID != agentClaims.UserID {
			t.Fatalf("foreign property in owner listing: %+v", p)
		}
	}
}

func TestPropertyService_Search(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := newPropertyService(repo, nil)

	seed := []struct {
		location string
		price    float64
	}{
		{"Pune", 50},
		{"Pune East", 150},
		{"Mumbai", 200},
		{"Delhi", 300},
	}
	for _, s := range seed {
		if _, err := svc.Create(context.Background(), ports.CreatePropertyInput{
			Title:    "T",
			Location: s.location,
			Price:    s.price,
		}, agentClaims); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	// No filters → everything.
	all, err := svc.Search(context.Background(), ports.SearchFilter{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(all) != len(seed) {
		t.Fatalf("expected %d results, got %d", len(seed), len(all))
	}

	// Case-insensitive substring on location.
	pune, err := svc.Search(context.Background(), ports.SearchFilter{Location: "pune"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(pune) != 2 {
		t.Fatalf("expected 2 pune results, got %d", len(pune))
	}

	// Inclusive price bounds, AND-composed with location.
	min, max := 100.0, 200.0
	bounded, err := svc.Search(context.Background(), ports.SearchFilter{MinPrice: &min, MaxPrice: &max})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(bounded) != 2 {
		t.Fatalf("expected 2 results in [100,200], got %d", len(bounded))
	}
	for _, p := range bounded {
		if p.Price < min || p.Price > max {
			t.Fatalf("price %f outside bounds", p.Price)
		}
	}

	both, err := svc.Search(context.Background(), ports.SearchFilter{Location: "pune", MinPrice: &min, MaxPrice: &max})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(both) != 1 || both[0].Location != "Pune East" {
		t.Fatalf("expected only Pune East, got %+v", both)
	}

	// Inverted bounds yield an empty result, not an error.
	lo, hi := 500.0, 100.0
	empty, err := svc.Search(context.Background(), ports.SearchFilter{MinPrice: &lo, MaxPrice: &hi})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty result, got %d", len(empty))
	}
}

func TestPropertyService_Stats(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := newPropertyService(repo, nil)

	seedProperty(t, svc, agentClaims)
	created := seedProperty(t, svc, agentClaims)
	if _, err := svc.Update(context.Background(), created.ID, ports.UpdatePropertyInput{
		Title: "X", Location: "Pune", Price: 1000, Status: "sold",
	}, adminClaims); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	counts, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if counts[domain.StatusSold] != 1 || counts[domain.StatusAvailable] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
	if _, present := counts[domain.StatusRented]; present {
		t.Fatalf("empty statuses must not be zero-filled")
	}
}

func TestPropertyService_Stats_CacheHit(t *testing.T) {
	repo := newStubPropertyRepo()
	cache := &stubStatsCache{stored: map[domain.PropertyStatus]int64{domain.StatusSold: 7}}
	svc := newPropertyService(repo, cache)

	counts, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if counts[domain.StatusSold] != 7 {
		t.Fatalf("expected cached counts, got %v", counts)
	}
	if repo.countCalls != 0 {
		t.Fatalf("storage aggregation must not run on a cache hit")
	}
}

func TestPropertyService_Stats_CacheMissPopulates(t *testing.T) {
	repo := newStubPropertyRepo()
	cache := &stubStatsCache{}
	svc := newPropertyService(repo, cache)
	seedProperty(t, svc, agentClaims)

	if _, err := svc.Stats(context.Background()); err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if repo.countCalls != 1 {
		t.Fatalf("expected one aggregation call, got %d", repo.countCalls)
	}
	if cache.sets != 1 {
		t.Fatalf("expected cache to be populated")
	}
}

func TestPropertyService_Stats_CacheErrorFallsBack(t *testing.T) {
	repo := newStubPropertyRepo()
	cache := &stubStatsCache{err: context.DeadlineExceeded}
	svc := newPropertyService(repo, cache)
	seedProperty(t, svc, agentClaims)

	counts, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("a broken cache must not fail the request: %v", err)
	}
	if counts[domain.StatusAvailable] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
	if repo.countCalls != 1 {
		t.Fatalf("expected fallback to storage")
	}
}
