package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pllumaj/results/internal/core/domain"
	"github.com/pllumaj/results/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubNeedRepo struct {
	needs     []*domain.Need
	seq       int
	lastLimit int
}

func newStubNeedRepo() *stubNeedRepo {
	return &stubNeedRepo{}
}

func (r *stubNeedRepo) Create(_ context.Context, need *domain.Need) (*domain.Need, error) {
	r.seq++
	clone := *need
	clone.ID = fmt.Sprintf("need_%d", r.seq)
	r.needs = append(r.needs, &clone)
	copy := clone
	return &copy, nil
}

func (r *stubNeedRepo) FindByID(_ context.Context, id string) (*domain.Need, error) {
	for _, n := range r.needs {
		if n.ID == id {
			clone := *n
			return &clone, nil
		}
	}
	return nil, domain.ErrNeedNotFound
}

// ListRecent returns newest first, mirroring the Mongo sort.
func (r *stubNeedRepo) ListRecent(_ context.Context, limit int) ([]*domain.Need, error) {
	r.lastLimit = limit
	var out []*domain.Need
	for i := len(r.needs) - 1; i >= 0 && len(out) < limit; i-- {
		clone := *r.needs[i]
		out = append(out, &clone)
	}
	return out, nil
}

type stubCategoryRepo struct {
	categories []*domain.Category
	seq        int
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	r.seq++
	clone := *c
	clone.ID = fmt.Sprintf("cat_%d", r.seq)
	r.categories = append(r.categories, &clone)
	copy := clone
	return &copy, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("category not found")
}

func (r *stubCategoryRepo) FindFirst(_ context.Context) (*domain.Category, error) {
	if len(r.categories) == 0 {
		return nil, nil
	}
	clone := *r.categories[0]
	return &clone, nil
}

type stubCityRepo struct {
	cities []*domain.City
	seq    int
}

func (r *stubCityRepo) Create(_ context.Context, c *domain.City) (*domain.City, error) {
	r.seq++
	clone := *c
	clone.ID = fmt.Sprintf("city_%d", r.seq)
	r.cities = append(r.cities, &clone)
	copy := clone
	return &copy, nil
}

func (r *stubCityRepo) FindByID(_ context.Context, id string) (*domain.City, error) {
	for _, c := range r.cities {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("city not found")
}

func (r *stubCityRepo) FindFirst(_ context.Context) (*domain.City, error) {
	if len(r.cities) == 0 {
		return nil, nil
	}
	clone := *r.cities[0]
	return &clone, nil
}

func newNeedFixture() (*NeedService, *stubUserRepo, *stubNeedRepo, *stubCategoryRepo, *stubCityRepo) {
	users := newStubUserRepo()
	needs := newStubNeedRepo()
	categories := &stubCategoryRepo{}
	cities := &stubCityRepo{}
	svc := NewNeedService(needs, users, categories, cities, zerolog.Nop())
	return svc, users, needs, categories, cities
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestNeedService_Create_Success(t *testing.T) {
	svc, users, _, categories, cities := newNeedFixture()
	client := users.add("client@example.com", domain.RoleClient)
	category, _ := categories.Create(context.Background(), &domain.Category{Name: "Plumbing", Slug: "plumbing"})
	city, _ := cities.Create(context.Background(), &domain.City{Name: "Shkodër", Country: "Albania"})

	budget := 50.0
	need, err := svc.Create(context.Background(), client.ID, ports.CreateNeedInput{
		Title:        "Fix leaking sink",
		Description:  "Kitchen sink leaking",
		BudgetAmount: &budget,
		CategoryID:   category.ID,
		CityID:       city.ID,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if need.ID == "" {
		t.Fatalf("expected persisted need to have an id")
	}
	if need.ClientID != client.ID {
		t.Fatalf("unexpected client: %s", need.ClientID)
	}
	if need.CategoryID != category.ID || need.CityID != city.ID {
		t.Fatalf("expected given category/city to be used: %+v", need)
	}
	if need.Status != domain.NeedStatusPosted {
		t.Fatalf("unexpected status: %s", need.Status)
	}
	if need.BudgetCurrency != "USD" {
		t.Fatalf("expected USD default currency, got %s", need.BudgetCurrency)
	}
	if need.TimeEarliest.IsZero() {
		t.Fatalf("expected TimeEarliest to default to now")
	}
}

func TestNeedService_Create_UnknownCaller(t *testing.T) {
	svc, _, _, _, _ := newNeedFixture()

	_, err := svc.Create(context.Background(), "ghost", ports.CreateNeedInput{
		Title:       "t",
		Description: "d",
	})
	if err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestNeedService_Create_MissingFields(t *testing.T) {
	svc, users, _, _, _ := newNeedFixture()
	client := users.add("client@example.com", domain.RoleClient)

	if _, err := svc.Create(context.Background(), client.ID, ports.CreateNeedInput{Description: "d"}); err != domain.ErrNeedFieldsRequired {
		t.Fatalf("expected ErrNeedFieldsRequired, got %v", err)
	}
	if _, err := svc.Create(context.Background(), client.ID, ports.CreateNeedInput{Title: "t", Description: "   "}); err != domain.ErrNeedFieldsRequired {
		t.Fatalf("expected ErrNeedFieldsRequired for blank description, got %v", err)
	}
}

func TestNeedService_Create_CategoryFallbackToFirst(t *testing.T) {
	svc, users, _, categories, _ := newNeedFixture()
	client := users.add("client@example.com", domain.RoleClient)
	first, _ := categories.Create(context.Background(), &domain.Category{Name: "Plumbing", Slug: "plumbing"})
	_, _ = categories.Create(context.Background(), &domain.Category{Name: "Electrics", Slug: "electrics"})

	need, err := svc.Create(context.Background(), client.ID, ports.CreateNeedInput{
		Title:       "t",
		Description: "d",
		CategoryID:  "does-not-exist",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if need.CategoryID != first.ID {
		t.Fatalf("expected fallback to first category %s, got %s", first.ID, need.CategoryID)
	}
}

func TestNeedService_Create_DefaultRecordsOnEmptyStores(t *testing.T) {
	svc, users, _, categories, cities := newNeedFixture()
	client := users.add("client@example.com", domain.RoleClient)

	need, err := svc.Create(context.Background(), client.ID, ports.CreateNeedInput{
		Title:       "t",
		Description: "d",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if len(categories.categories) != 1 || categories.categories[0].Name != "General" || categories.categories[0].Slug != "general" {
		t.Fatalf("expected a created General category, got %+v", categories.categories)
	}
	if len(cities.cities) != 1 || cities.cities[0].Name != "Default City" || cities.cities[0].Timezone != "UTC" {
		t.Fatalf("expected a created default city, got %+v", cities.cities)
	}
	if need.CategoryID != categories.categories[0].ID || need.CityID != cities.cities[0].ID {
		t.Fatalf("expected need to reference the created defaults: %+v", need)
	}
}

func TestNeedService_List_JoinsClientEmails(t *testing.T) {
	svc, users, needs, _, _ := newNeedFixture()
	alice := users.add("alice@example.com", domain.RoleClient)
	bob := users.add("bob@example.com", domain.RoleClient)

	now := time.Now().UTC()
	_, _ = needs.Create(context.Background(), &domain.Need{Title: "first", ClientID: alice.ID, CreatedAt: now})
	_, _ = needs.Create(context.Background(), &domain.Need{Title: "second", ClientID: bob.ID, CreatedAt: now.Add(time.Minute)})

	summaries, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if needs.lastLimit != 20 {
		t.Fatalf("expected listing capped at 20, got %d", needs.lastLimit)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 needs, got %d", len(summaries))
	}
	if summaries[0].Need.Title != "second" || summaries[0].ClientEmail != "bob@example.com" {
		t.Fatalf("expected newest first with client email, got %+v", summaries[0])
	}
	if summaries[1].ClientEmail != "alice@example.com" {
		t.Fatalf("expected alice's email on the older need, got %+v", summaries[1])
	}
}
