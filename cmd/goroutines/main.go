// Goroutine fixture: a fixed set of workers incrementing a shared counter,
// for exercising goroutine listing and per-goroutine breakpoints.
package main

import (
	"fmt"
	"sync"
)

const numWorkers = 2

type counter struct {
	mu    sync.Mutex
	value int
}

func (c *counter) increment() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value++
	return c.value
}

func (c *counter) load() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func worker(id int, c *counter, start <-chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()

	<-start // breakpoint target: goroutine parked before start

	local := c.increment() // breakpoint target: worker body
	fmt.Printf("Worker %d incremented counter to %d\n", id, local)
}

// runWorkers releases n workers against a shared counter and returns its
// final value. The buffered start channel gives deterministic release
// without requiring the workers to rendezvous.
func runWorkers(n int) int {
	c := &counter{}
	start := make(chan struct{}, n)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go worker(i, c, start, &wg)
	}

	for i := 0; i < n; i++ {
		start <- struct{}{}
	}
	wg.Wait()

	return c.load()
}

func main() {
	fmt.Printf("Starting %d workers\n", numWorkers)
	final := runWorkers(numWorkers) // breakpoint target: before workers run
	fmt.Printf("Final counter value: %d\n", final)
}
