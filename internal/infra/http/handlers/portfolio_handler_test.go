package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/reboundcg/lead-portal/internal/entity"
	"github.com/reboundcg/lead-portal/internal/infra/http/middleware"
	"github.com/reboundcg/lead-portal/internal/query"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func portfolioFixture() []entity.Lead {
	return []entity.Lead{
		{ID: "l1", County: "FL-MiamiDade", Status: entity.StatusNew, LeadType: entity.LeadTypeSurplus, Surplus: "$50,000", AssignedTo: "u-op"},
		{ID: "l2", County: "FL-Broward", Status: entity.StatusContacted, LeadType: entity.LeadTypeSurplus, Surplus: "$30,000"},
		{ID: "l3", County: "GA-Fulton", Status: entity.StatusDead, LeadType: entity.LeadTypeFutureAuction, Surplus: "$20,000", AssignedTo: "u-op"},
	}
}

func listRequest(target string, operator entity.User) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	return r.WithContext(middleware.WithOperator(r.Context(), operator))
}

func TestGetPortfolio(t *testing.T) {
	t.Run("Admin Gets Everything And Is Not Read Only", func(t *testing.T) {
		leads := new(MockLeadRepository)
		users := new(MockUserRepository)
		leads.On("FindAll", mock.Anything).Return(portfolioFixture(), nil)
		users.On("FindAll", mock.Anything).Return([]entity.User{adminUser, plainUser}, nil)

		w := httptest.NewRecorder()
		NewPortfolioHandler(leads, users, testLogger()).GetPortfolio(w, listRequest("/api/portfolio", adminUser))

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Leads     []entity.Lead `json:"leads"`
			Operators []entity.User `json:"operators"`
			ReadOnly  bool          `json:"read_only"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Leads, 3)
		assert.Len(t, body.Operators, 2)
		assert.False(t, body.ReadOnly)
	})

	t.Run("Operator Gets Own Leads And Is Read Only", func(t *testing.T) {
		leads := new(MockLeadRepository)
		users := new(MockUserRepository)
		leads.On("FindAll", mock.Anything).Return(portfolioFixture(), nil)
		users.On("FindAll", mock.Anything).Return([]entity.User{adminUser, plainUser}, nil)

		w := httptest.NewRecorder()
		NewPortfolioHandler(leads, users, testLogger()).GetPortfolio(w, listRequest("/api/portfolio", plainUser))

		var body struct {
			Leads    []entity.Lead `json:"leads"`
			ReadOnly bool          `json:"read_only"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Leads, 2)
		assert.True(t, body.ReadOnly)
	})
}

func TestListLeads(t *testing.T) {
	t.Run("Filters From Query String", func(t *testing.T) {
		leads := new(MockLeadRepository)
		leads.On("FindAll", mock.Anything).Return(portfolioFixture(), nil)

		w := httptest.NewRecorder()
		NewPortfolioHandler(leads, new(MockUserRepository), testLogger()).
			ListLeads(w, listRequest("/api/leads?status=Contacted&state=FL", adminUser))

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Leads []entity.Lead `json:"leads"`
			Stats query.Statistics `json:"stats"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Leads, 1)
		assert.Equal(t, "l2", body.Leads[0].ID)
		// Stats cover the whole scoped set, not the filtered subset.
		assert.Equal(t, 3, body.Stats.Total)
		assert.Equal(t, 80000.0, body.Stats.TotalRecoverableSurplus)
	})

	t.Run("Menus Ignore Active Filters", func(t *testing.T) {
		leads := new(MockLeadRepository)
		leads.On("FindAll", mock.Anything).Return(portfolioFixture(), nil)

		w := httptest.NewRecorder()
		NewPortfolioHandler(leads, new(MockUserRepository), testLogger()).
			ListLeads(w, listRequest("/api/leads?county=FL-Broward", adminUser))

		var body struct {
			Counties []string `json:"counties"`
			States   []string `json:"states"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, []string{"FL-Broward", "FL-MiamiDade", "GA-Fulton"}, body.Counties)
		assert.Equal(t, []string{"FL", "GA"}, body.States)
	})
}
