package usecase

import "sync"

// sessionLockManager hands out one mutex per operator id so two mutating
// operations on the same session (e.g. two scans arriving back to back)
// serialize instead of racing on the same picked quantity.
type sessionLockManager struct {
	mu    sync.RWMutex
	locks map[string]*sync.Mutex
}

func newSessionLockManager() *sessionLockManager {
	return &sessionLockManager{locks: make(map[string]*sync.Mutex)}
}

func (m *sessionLockManager) get(operatorID string) *sync.Mutex {
	m.mu.RLock()
	if lock, ok := m.locks[operatorID]; ok {
		m.mu.RUnlock()
		return lock
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check in case another goroutine created it.
	if lock, ok := m.locks[operatorID]; ok {
		return lock
	}
	lock := &sync.Mutex{}
	m.locks[operatorID] = lock
	return lock
}
