package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"users-api/internal/application/services"
	domain "users-api/internal/domain/user"
	"users-api/internal/interface/api/rest/dto/user"
)

// memRepository keeps users in insertion order.
type memRepository struct {
	mu    sync.Mutex
	order []domain.UUID
	users map[domain.UUID]domain.User
}

func newMemRepository() *memRepository {
	return &memRepository{users: make(map[domain.UUID]domain.User)}
}

func (m *memRepository) FetchUserByID(_ context.Context, id domain.UUID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, domain.NewPersistenceError("fetch user", domain.ErrUserNotFound)
	}
	return &u, nil
}

func (m *memRepository) FetchUsers(_ context.Context) (domain.Users, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	us := make(domain.Users, 0, len(m.order))
	for _, id := range m.order {
		u := m.users[id]
		us = append(us, &u)
	}
	return us, nil
}

func (m *memRepository) CreateUser(_ context.Context, u domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == u.Email {
			return nil, domain.NewPersistenceError("create user", domain.ErrEmailAlreadyExists)
		}
	}

	now := time.Now().UTC()
	u.UUID, u.CreatedAt, u.UpdatedAt = uuid.New(), now, now
	m.users[u.UUID] = u
	m.order = append(m.order, u.UUID)
	return &u, nil
}

func (m *memRepository) UpdateUser(_ context.Context, id domain.UUID, p domain.Patch) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, domain.NewPersistenceError("update user", domain.ErrUserNotFound)
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Password != nil {
		u.Password = *p.Password
	}

	now := time.Now().UTC()
	if !now.After(u.UpdatedAt) {
		now = u.UpdatedAt.Add(time.Microsecond)
	}
	u.UpdatedAt = now
	m.users[id] = u
	return &u, nil
}

func (m *memRepository) DeleteUser(_ context.Context, id domain.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return domain.NewPersistenceError("delete user", domain.ErrUserNotFound)
	}
	delete(m.users, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func TestUserFlow(t *testing.T) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "flow_counters"}, []string{"result"})
	r := setupRouter(t, services.NewUserService(newMemRepository(), counter))

	// create
	rr := doReq(t, r, http.MethodPost, "/users", validCreateRequest())
	require.Equal(t, http.StatusCreated, rr.Code)

	var created user.ResponseData
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, uuid.Version(4), created.Data.ID.Version())
	assert.Equal(t, "john@doe.com", created.Data.Email)
	assert.Equal(t, "123456", created.Data.Password)
	assert.True(t, created.Data.CreatedAt.Equal(created.Data.UpdatedAt))
	path := "/users/" + created.Data.ID.String()

	// duplicate email
	rr = doReq(t, r, http.MethodPost, "/users", validCreateRequest())
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, []string{"email already exists"}, decodeError(t, rr).Message)

	// list
	rr = doReq(t, r, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list user.ResponseList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, created.Data.ID, list.Data[0].ID)

	// partial update
	rr = doReq(t, r, http.MethodPut, path, map[string]string{"email": "john_updated@doe.com"})
	require.Equal(t, http.StatusOK, rr.Code)
	var updated user.ResponseData
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "john_updated@doe.com", updated.Data.Email)
	assert.Equal(t, "John", updated.Data.Name)
	assert.True(t, updated.Data.CreatedAt.Equal(created.Data.CreatedAt))
	assert.True(t, updated.Data.UpdatedAt.After(updated.Data.CreatedAt))

	// get
	rr = doReq(t, r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var got user.ResponseData
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, updated.Data, got.Data)

	// delete
	rr = doReq(t, r, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"User deleted successfully"}`, rr.Body.String())

	// gone
	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		rr = doReq(t, r, method, path, nil)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, []string{"user not found"}, decodeError(t, rr).Message)
	}

	rr = doReq(t, r, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Users getted successfully","data":[]}`, rr.Body.String())
}
