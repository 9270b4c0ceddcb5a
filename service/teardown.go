package service

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

type Manager struct {
	ctx       context.Context
	cancel    context.CancelFunc
	wg        *sync.WaitGroup
	lock      sync.Mutex
	teardowns []func()
}

var tdm *Manager
var once sync.Once

func GetTeardownManager() *Manager {
	once.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		tdm = &Manager{
			ctx:       ctx,
			cancel:    cancel,
			wg:        &sync.WaitGroup{},
			teardowns: make([]func(), 0),
		}
		go func() {
			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
			<-sigs
			tdm.cancel()
		}()
	})
	return tdm
}

func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) WaitGroup() *sync.WaitGroup {
	return m.wg
}

func (m *Manager) TeardownFunc(f func()) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.teardowns = append(m.teardowns, f)
}

// Wait blocks until shutdown is signalled, then drains workers and runs teardown functions in reverse order.
func (m *Manager) Wait() {
	<-m.ctx.Done()
	m.wg.Wait()

	m.lock.Lock()
	defer m.lock.Unlock()
	for i := len(m.teardowns) - 1; i >= 0; i-- {
		m.teardowns[i]()
	}
}

func (m *Manager) Cancel() {
	m.cancel()
}
