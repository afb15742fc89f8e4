package workers

import (
	"context"
	"sync"
	"time"

	"github.com/fayrashop/api/internal/logger"
	"github.com/fayrashop/api/internal/store"
)

const (
	// loginQueueSize bounds the number of pending login stamps. When the
	// queue is full new records are dropped rather than blocking a login
	// response.
	loginQueueSize = 256

	// loginWriteTimeout bounds a single last-login write.
	loginWriteTimeout = 5 * time.Second
)

// LoginRecorder stamps users' last successful login time in the
// background. Logins enqueue a record and return immediately; a single
// consumer goroutine applies the writes, so a slow or failing database
// never delays authentication responses.
type LoginRecorder struct {
	users  store.UserRepository
	logger *logger.Logger

	queue chan loginRecord
	wg    sync.WaitGroup
	once  sync.Once
}

type loginRecord struct {
	userID string
	at     time.Time
}

// NewLoginRecorder constructs a LoginRecorder over the given user
// repository. Call Run to start the consumer.
func NewLoginRecorder(users store.UserRepository, log *logger.Logger) *LoginRecorder {
	return &LoginRecorder{
		users:  users,
		logger: log,
		queue:  make(chan loginRecord, loginQueueSize),
	}
}

// Record enqueues a last-login stamp for the given user. It never blocks:
// when the queue is full the record is dropped and a warning is logged.
func (r *LoginRecorder) Record(userID string) {
	select {
	case r.queue <- loginRecord{userID: userID, at: time.Now()}:
	default:
		r.logger.Warn().Str("user_id", userID).Msg("login record queue full, dropping record")
	}
}

// Run starts the consumer goroutine. It returns immediately.
func (r *LoginRecorder) Run() {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		for record := range r.queue {
			r.apply(record)
		}
	}()
}

// Stop closes the queue and waits for pending records to drain.
func (r *LoginRecorder) Stop() {
	r.once.Do(func() {
		close(r.queue)
	})
	r.wg.Wait()
}

func (r *LoginRecorder) apply(record loginRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), loginWriteTimeout)
	defer cancel()

	if err := r.users.RecordLogin(ctx, record.userID, record.at); err != nil {
		r.logger.Err(err).Str("user_id", record.userID).Msg("error recording user login")
	}
}
