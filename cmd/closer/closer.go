package closer

import (
	"sync"

	"github.com/meverselabs/yfacfarm/common/rlog"
	"go.uber.org/zap"
)

// Closer is Closer inferface
type Closer interface {
	Close()
}

// Manager closes the registered closers in the reverse order of Add
type Manager struct {
	sync.Mutex
	isClosed bool
	names    []string
	closers  []Closer
	done     chan struct{}
}

// NewManager returns a Manager
func NewManager() *Manager {
	cm := &Manager{
		names:   []string{},
		closers: []Closer{},
		done:    make(chan struct{}),
	}
	return cm
}

// IsClosed returns it is closed or not
func (cm *Manager) IsClosed() bool {
	cm.Lock()
	defer cm.Unlock()

	return cm.isClosed
}

// RemoveAll removes all closers
func (cm *Manager) RemoveAll() {
	cm.Lock()
	defer cm.Unlock()

	cm.names = []string{}
	cm.closers = []Closer{}
}

// Add adds a closer with a name
func (cm *Manager) Add(name string, c Closer) {
	cm.Lock()
	defer cm.Unlock()

	cm.names = append(cm.names, name)
	cm.closers = append(cm.closers, c)
}

// Names returns the names of the registered closers
func (cm *Manager) Names() []string {
	cm.Lock()
	defer cm.Unlock()

	return append([]string{}, cm.names...)
}

// CloseAll closers all closers
func (cm *Manager) CloseAll() {
	cm.Lock()
	if cm.isClosed {
		cm.Unlock()
		return
	}
	cm.isClosed = true
	names := cm.names
	closers := cm.closers
	cm.Unlock()

	log := rlog.Named("closer")
	for i := len(closers) - 1; i >= 0; i-- {
		log.Info("close", zap.String("name", names[i]))
		closers[i].Close()
	}
	close(cm.done)
}

// Wait waits close all
func (cm *Manager) Wait() {
	<-cm.done
}
