package memory

import (
	"context"
	"sync"
	"time"

	"clubform/internal/common"
	"clubform/internal/domain/application"
)

// ApplicationRepository keeps applications in process memory. It is used when
// no database is configured and in tests.
type ApplicationRepository struct {
	mu    sync.RWMutex
	items map[common.UUID]application.Application
	order []common.UUID
}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{items: make(map[common.UUID]application.Application)}
}

func (r *ApplicationRepository) Create(_ context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app.ID = common.NewUUID()
	app.CreatedAt = time.Now().UTC()
	app.Skills = append([]string{}, app.Skills...)
	r.items[app.ID] = app
	r.order = append(r.order, app.ID)
	return cloneApplication(app), nil
}

func (r *ApplicationRepository) GetByID(_ context.Context, id common.UUID) (*application.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	app, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	return cloneApplication(app), nil
}

func (r *ApplicationRepository) Ping(context.Context) error {
	return nil
}

// Len reports how many applications are stored.
func (r *ApplicationRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

func cloneApplication(app application.Application) *application.Application {
	copy := app
	copy.Skills = append([]string{}, app.Skills...)
	return &copy
}
