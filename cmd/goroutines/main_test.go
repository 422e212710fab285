package main

import (
	"sync"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestGoroutines(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Goroutines Fixture Suite")
}

var _ = Describe("counter", func() {
	It("increments under concurrent access", func() {
		c := &counter{}
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c.increment()
			}()
		}
		wg.Wait()
		Expect(c.load()).To(Equal(50))
	})
})

var _ = Describe("runWorkers", func() {
	It("counts one increment per worker", func() {
		Expect(runWorkers(numWorkers)).To(Equal(numWorkers))
		Expect(runWorkers(8)).To(Equal(8))
	})

	It("runs no workers for n = 0", func() {
		Expect(runWorkers(0)).To(BeZero())
	})
})

var _ = Describe("worker", func() {
	It("does not touch the counter before the start signal", func() {
		c := &counter{}
		start := make(chan struct{}, 1)
		var wg sync.WaitGroup

		wg.Add(1)
		go worker(0, c, start, &wg)

		Consistently(c.load, 50*time.Millisecond).Should(BeZero())

		start <- struct{}{}
		wg.Wait()
		Expect(c.load()).To(Equal(1))
	})
})
