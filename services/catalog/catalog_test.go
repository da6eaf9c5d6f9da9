package catalog

import (
	"errors"
	"testing"

	"pawhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeCatalogRepo is an in-memory CatalogRepository.
type fakeCatalogRepo struct {
	services map[string]*models.VetService
	failAll  bool
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{services: make(map[string]*models.VetService)}
}

var errStoreDown = errors.New("store down")

func (f *fakeCatalogRepo) Create(svc *models.VetService) error {
	if f.failAll {
		return errStoreDown
	}
	cp := *svc
	f.services[svc.ID] = &cp
	return nil
}

func (f *fakeCatalogRepo) GetByID(id string) (*models.VetService, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	svc, ok := f.services[id]
	if !ok {
		return nil, nil
	}
	cp := *svc
	return &cp, nil
}

func (f *fakeCatalogRepo) ListByBusiness(businessID string, activeOnly bool) ([]models.VetService, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	var out []models.VetService
	for _, svc := range f.services {
		if svc.BusinessID != businessID {
			continue
		}
		if activeOnly && !svc.Active {
			continue
		}
		out = append(out, *svc)
	}
	return out, nil
}

func (f *fakeCatalogRepo) Update(id, businessID string, set bson.M) (bool, error) {
	if f.failAll {
		return false, errStoreDown
	}
	svc, ok := f.services[id]
	if !ok || svc.BusinessID != businessID {
		return false, nil
	}
	if name, ok := set["name"].(string); ok {
		svc.Name = name
	}
	if desc, ok := set["description"].(string); ok {
		svc.Description = desc
	}
	if price, ok := set["price"].(float64); ok {
		svc.Price = price
	}
	if dur, ok := set["duration"].(string); ok {
		svc.Duration = dur
	}
	if cat, ok := set["category"].(string); ok {
		svc.Category = cat
	}
	return true, nil
}

func (f *fakeCatalogRepo) ToggleActive(id, businessID string) (bool, bool, error) {
	if f.failAll {
		return false, false, errStoreDown
	}
	svc, ok := f.services[id]
	if !ok || svc.BusinessID != businessID {
		return false, false, nil
	}
	svc.Active = !svc.Active
	return svc.Active, true, nil
}

func (f *fakeCatalogRepo) Delete(id, businessID string) (bool, error) {
	if f.failAll {
		return false, errStoreDown
	}
	svc, ok := f.services[id]
	if !ok || svc.BusinessID != businessID {
		return false, nil
	}
	delete(f.services, id)
	return true, nil
}

const businessID = "vet-1"

func TestCreateStartsActive(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := &DefaultCatalogService{Repo: repo}

	created, err := svc.Create(businessID, CreateServiceRequest{
		Name:     "Annual checkup",
		Price:    500,
		Duration: "30 minutes",
		Category: "preventive",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !created.Active {
		t.Error("new entries must start active")
	}
	if created.BusinessID != businessID {
		t.Errorf("expected owner %s, got %s", businessID, created.BusinessID)
	}
	if created.ID == "" {
		t.Error("expected a generated ID")
	}
}

func TestCreateValidation(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := &DefaultCatalogService{Repo: repo}

	var verr *models.ValidationError
	if _, err := svc.Create(businessID, CreateServiceRequest{Price: 100}); !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for missing name, got %v", err)
	}
	if _, err := svc.Create(businessID, CreateServiceRequest{Name: "X-ray", Price: -1}); !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for negative price, got %v", err)
	}
	if len(repo.services) != 0 {
		t.Error("rejected requests must not persist anything")
	}
}

func TestDuplicateNamesAllowed(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := &DefaultCatalogService{Repo: repo}

	req := CreateServiceRequest{Name: "Grooming", Price: 200}
	first, err := svc.Create(businessID, req)
	if err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	second, err := svc.Create(businessID, req)
	if err != nil {
		t.Fatalf("second Create failed: %v", err)
	}
	if first.ID == second.ID {
		t.Error("entries with the same name must get distinct IDs")
	}
}

func TestUpdateScopedByOwner(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := &DefaultCatalogService{Repo: repo}
	created, _ := svc.Create(businessID, CreateServiceRequest{Name: "Vaccination", Price: 300})

	newPrice := 350.0
	updated, err := svc.Update(businessID, created.ID, UpdateServiceRequest{Price: &newPrice})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Price != 350 {
		t.Errorf("expected price 350, got %v", updated.Price)
	}

	var nferr *models.NotFoundError
	if _, err := svc.Update("vet-2", created.ID, UpdateServiceRequest{Price: &newPrice}); !errors.As(err, &nferr) {
		t.Errorf("expected NotFoundError for foreign owner, got %v", err)
	}

	var verr *models.ValidationError
	if _, err := svc.Update(businessID, created.ID, UpdateServiceRequest{}); !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for empty update, got %v", err)
	}
}

func TestToggleActive(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := &DefaultCatalogService{Repo: repo}
	created, _ := svc.Create(businessID, CreateServiceRequest{Name: "Boarding", Price: 800})

	active, found, err := svc.ToggleActive(businessID, created.ID)
	if err != nil {
		t.Fatalf("ToggleActive failed: %v", err)
	}
	if !found || active {
		t.Errorf("expected found with active=false, got found=%v active=%v", found, active)
	}

	active, found, err = svc.ToggleActive(businessID, created.ID)
	if err != nil || !found || !active {
		t.Errorf("expected found with active=true, got found=%v active=%v (err %v)", found, active, err)
	}
}

func TestToggleMissingIsNotAnError(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := &DefaultCatalogService{Repo: repo}

	_, found, err := svc.ToggleActive(businessID, "missing")
	if err != nil {
		t.Fatalf("missing toggle must not error, got %v", err)
	}
	if found {
		t.Error("expected found=false for missing entry")
	}
}

func TestDelete(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := &DefaultCatalogService{Repo: repo}
	created, _ := svc.Create(businessID, CreateServiceRequest{Name: "Dental cleaning", Price: 400})

	deleted, err := svc.Delete(businessID, created.ID)
	if err != nil || !deleted {
		t.Fatalf("expected deleted=true, got %v (err %v)", deleted, err)
	}

	// Idempotent miss.
	deleted, err = svc.Delete(businessID, created.ID)
	if err != nil {
		t.Fatalf("repeat delete must not error, got %v", err)
	}
	if deleted {
		t.Error("expected deleted=false on second call")
	}
}

func TestDeleteScopedByOwner(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := &DefaultCatalogService{Repo: repo}
	created, _ := svc.Create(businessID, CreateServiceRequest{Name: "Walking", Price: 50})

	deleted, err := svc.Delete("vet-2", created.ID)
	if err != nil || deleted {
		t.Fatalf("foreign delete must be a miss, got deleted=%v err=%v", deleted, err)
	}
	if _, ok := repo.services[created.ID]; !ok {
		t.Error("entry must survive a foreign delete attempt")
	}
}

func TestListActiveOnly(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := &DefaultCatalogService{Repo: repo}
	a, _ := svc.Create(businessID, CreateServiceRequest{Name: "Checkup", Price: 500})
	b, _ := svc.Create(businessID, CreateServiceRequest{Name: "Surgery", Price: 5000})
	if _, _, err := svc.ToggleActive(businessID, b.ID); err != nil {
		t.Fatalf("ToggleActive failed: %v", err)
	}

	all, err := svc.ListByBusiness(businessID, false)
	if err != nil || len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d (err %v)", len(all), err)
	}

	active, err := svc.ListByBusiness(businessID, true)
	if err != nil || len(active) != 1 || active[0].ID != a.ID {
		t.Fatalf("expected only the active entry, got %+v (err %v)", active, err)
	}
}
