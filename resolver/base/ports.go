package base

import (
	"fmt"
	"sync"
)

// portPool hands out chromedriver ports so concurrent selenium fetches
// don't collide on the same instance.
type portPool struct {
	basePort  int
	portRange int
	inUse     map[int]bool
	mu        sync.Mutex
}

var (
	pool     *portPool
	poolOnce sync.Once
)

func initPortPool(basePort, portRange int) {
	poolOnce.Do(func() {
		inUse := make(map[int]bool, portRange)
		for i := 0; i < portRange; i++ {
			inUse[basePort+i] = false
		}
		pool = &portPool{
			basePort:  basePort,
			portRange: portRange,
			inUse:     inUse,
		}
	})
}

func (p *portPool) Acquire() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := 0; i < p.portRange; i++ {
		port := p.basePort + i
		if !p.inUse[port] {
			p.inUse[port] = true
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available ports in range %d-%d", p.basePort, p.basePort+p.portRange-1)
}

func (p *portPool) Release(port int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inUse[port] = false
}
