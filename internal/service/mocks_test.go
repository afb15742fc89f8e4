package service

import (
	"context"
	"sync"
	"time"

	"github.com/fayrashop/api/internal/store"
	"github.com/fayrashop/api/models"
)

// Hand-written repository fakes: each method delegates to an optional
// function field, so tests wire only what they exercise.

type userRepoMock struct {
	createFn         func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn    func(ctx context.Context, email string) (models.User, error)
	findByIDFn       func(ctx context.Context, id string) (models.User, error)
	listFn           func(ctx context.Context, q models.PageQuery) ([]models.User, int, error)
	updateFn         func(ctx context.Context, id string, upd models.UserUpdate) (models.User, error)
	updatePasswordFn func(ctx context.Context, id, hash string) error
	recordLoginFn    func(ctx context.Context, id string, at time.Time) error
	deleteFn         func(ctx context.Context, id string) error
}

var _ store.UserRepository = (*userRepoMock)(nil)

func (m *userRepoMock) Create(ctx context.Context, user models.User) (models.User, error) {
	return m.createFn(ctx, user)
}

func (m *userRepoMock) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findByEmailFn(ctx, email)
}

func (m *userRepoMock) FindByID(ctx context.Context, id string) (models.User, error) {
	return m.findByIDFn(ctx, id)
}

func (m *userRepoMock) List(ctx context.Context, q models.PageQuery) ([]models.User, int, error) {
	return m.listFn(ctx, q)
}

func (m *userRepoMock) Update(ctx context.Context, id string, upd models.UserUpdate) (models.User, error) {
	return m.updateFn(ctx, id, upd)
}

func (m *userRepoMock) UpdatePassword(ctx context.Context, id, hash string) error {
	return m.updatePasswordFn(ctx, id, hash)
}

func (m *userRepoMock) RecordLogin(ctx context.Context, id string, at time.Time) error {
	return m.recordLoginFn(ctx, id, at)
}

func (m *userRepoMock) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type roleRepoMock struct {
	createFn     func(ctx context.Context, role models.Role) (models.Role, error)
	findByIDFn   func(ctx context.Context, id string) (models.Role, error)
	findByNameFn func(ctx context.Context, name string) (models.Role, error)
	listFn       func(ctx context.Context) ([]models.Role, error)
	updateFn     func(ctx context.Context, id string, upd models.RoleUpdate) (models.Role, error)
	deleteFn     func(ctx context.Context, id string) error
}

var _ store.RoleRepository = (*roleRepoMock)(nil)

func (m *roleRepoMock) Create(ctx context.Context, role models.Role) (models.Role, error) {
	return m.createFn(ctx, role)
}

func (m *roleRepoMock) FindByID(ctx context.Context, id string) (models.Role, error) {
	return m.findByIDFn(ctx, id)
}

func (m *roleRepoMock) FindByName(ctx context.Context, name string) (models.Role, error) {
	return m.findByNameFn(ctx, name)
}

func (m *roleRepoMock) List(ctx context.Context) ([]models.Role, error) {
	return m.listFn(ctx)
}

func (m *roleRepoMock) Update(ctx context.Context, id string, upd models.RoleUpdate) (models.Role, error) {
	return m.updateFn(ctx, id, upd)
}

func (m *roleRepoMock) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type orderRepoMock struct {
	createFn       func(ctx context.Context, order models.Order) (models.Order, error)
	findByIDFn     func(ctx context.Context, id string) (models.Order, error)
	listFn         func(ctx context.Context, filter store.OrderFilter, q models.PageQuery) ([]models.Order, int, error)
	updateStatusFn func(ctx context.Context, id string, status models.OrderStatus) (models.Order, error)
}

var _ store.OrderRepository = (*orderRepoMock)(nil)

func (m *orderRepoMock) Create(ctx context.Context, order models.Order) (models.Order, error) {
	return m.createFn(ctx, order)
}

func (m *orderRepoMock) FindByID(ctx context.Context, id string) (models.Order, error) {
	return m.findByIDFn(ctx, id)
}

func (m *orderRepoMock) List(ctx context.Context, filter store.OrderFilter, q models.PageQuery) ([]models.Order, int, error) {
	return m.listFn(ctx, filter, q)
}

func (m *orderRepoMock) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	return m.updateStatusFn(ctx, id, status)
}

// recorderMock captures Record calls.
type recorderMock struct {
	mu  sync.Mutex
	ids []string
}

func (r *recorderMock) Record(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, userID)
}

func (r *recorderMock) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ids...)
}
