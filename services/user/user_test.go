package user

import (
	"errors"
	"strings"
	"testing"

	"pawhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByTokenHash(tokenHash string) (*models.User, error) {
	if tokenHash == "" {
		return nil, nil
	}
	for _, u := range f.users {
		if u.TokenHash == tokenHash {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(u *models.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Update(u *models.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) UpdateSetDocument(id string, set bson.M) error {
	u, ok := f.users[id]
	if !ok {
		return nil
	}
	if hash, ok := set["tokenHash"].(string); ok {
		u.TokenHash = hash
	}
	if pets, ok := set["pets"].([]models.PetProfile); ok {
		u.Pets = pets
	}
	if name, ok := set["name"].(string); ok {
		u.Name = name
	}
	if contact, ok := set["contactNumber"].(string); ok {
		u.ContactNumber = contact
	}
	if addr, ok := set["address"].(string); ok {
		u.Address = addr
	}
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}

func register(t *testing.T, svc *DefaultUserService) *AuthResponse {
	t.Helper()
	resp, err := svc.Register(RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "sunnydog42",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return resp
}

func TestRegisterIssuesToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp := register(t, svc)
	if resp.Token == "" || resp.ID == "" {
		t.Fatalf("expected token and id, got %+v", resp)
	}

	stored := repo.users[resp.ID]
	if stored == nil {
		t.Fatal("user not persisted")
	}
	if stored.PasswordHash == "" || stored.PasswordHash == "sunnydog42" {
		t.Error("password must be stored hashed")
	}
	if stored.TokenHash == "" {
		t.Error("token hash must be persisted")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}
	register(t, svc)

	_, err := svc.Register(RegisterRequest{Name: "Ana II", Email: "ana@example.com", Password: "sunnydog42"})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected duplicate email error, got %v", err)
	}
}

func TestPasswordComplexity(t *testing.T) {
	for _, pw := range []string{"short1", "onlyletters", "12345678"} {
		if err := VerifyPasswordComplexity(pw); err == nil {
			t.Errorf("password %q must be rejected", pw)
		}
	}
	if err := VerifyPasswordComplexity("sunnydog42"); err != nil {
		t.Errorf("valid password rejected: %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}
	register(t, svc)

	resp, err := svc.Authenticate("ana@example.com", "sunnydog42")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a fresh token")
	}

	if _, err := svc.Authenticate("ana@example.com", "wrongpass1"); err == nil {
		t.Error("wrong password must be rejected")
	}
	if _, err := svc.Authenticate("nobody@example.com", "sunnydog42"); err == nil {
		t.Error("unknown email must be rejected")
	}
}

func TestRevokeAuthToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}
	resp := register(t, svc)

	if err := svc.RevokeAuthToken(resp.ID); err != nil {
		t.Fatalf("RevokeAuthToken failed: %v", err)
	}
	if repo.users[resp.ID].TokenHash != "" {
		t.Error("token hash must be cleared")
	}
}

func TestPetLifecycle(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}
	resp := register(t, svc)

	u, err := svc.AddPet(resp.ID, models.PetProfile{Name: "Rex", Species: "dog", Breed: "beagle", Age: 4})
	if err != nil {
		t.Fatalf("AddPet failed: %v", err)
	}
	if len(u.Pets) != 1 || u.Pets[0].ID == "" {
		t.Fatalf("expected one pet with generated ID, got %+v", u.Pets)
	}
	petID := u.Pets[0].ID

	u, err = svc.UpdatePet(resp.ID, petID, models.PetProfile{Name: "Rex", Species: "dog", Age: 5})
	if err != nil {
		t.Fatalf("UpdatePet failed: %v", err)
	}
	if u.Pets[0].Age != 5 || u.Pets[0].ID != petID {
		t.Errorf("pet not updated in place: %+v", u.Pets[0])
	}

	pet, err := svc.GetPet(resp.ID, petID)
	if err != nil || pet.Name != "Rex" {
		t.Fatalf("GetPet failed: %+v (err %v)", pet, err)
	}

	u, err = svc.RemovePet(resp.ID, petID)
	if err != nil {
		t.Fatalf("RemovePet failed: %v", err)
	}
	if len(u.Pets) != 0 {
		t.Errorf("expected no pets, got %+v", u.Pets)
	}

	var nferr *models.NotFoundError
	if _, err := svc.RemovePet(resp.ID, petID); !errors.As(err, &nferr) {
		t.Errorf("expected NotFoundError on repeat removal, got %v", err)
	}
}

func TestAddPetValidation(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}
	resp := register(t, svc)

	var verr *models.ValidationError
	if _, err := svc.AddPet(resp.ID, models.PetProfile{Species: "dog"}); !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for missing name, got %v", err)
	}
	if _, err := svc.AddPet(resp.ID, models.PetProfile{Name: "Rex"}); !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for missing species, got %v", err)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	pet := models.PetProfile{ID: "p1", Name: "Rex", Species: "dog", Age: 4}
	snap := pet.Snapshot()

	pet.Name = "Max"
	pet.Age = 9

	if snap.Name != "Rex" || snap.Age != 4 {
		t.Errorf("snapshot must not track profile edits: %+v", snap)
	}
}
