package main

import (
	"fmt"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSimple(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Simple Fixture Suite")
}

var _ = Describe("calculate", func() {
	It("returns the sum of its arguments", func() {
		Expect(calculate(10, 20)).To(Equal(30))
		Expect(calculate(0, 0)).To(Equal(0))
		Expect(calculate(-5, 5)).To(Equal(0))
		Expect(calculate(-7, -3)).To(Equal(-10))
	})

	It("is commutative", func() {
		pairs := [][2]int{{10, 20}, {-1, 1}, {0, 42}, {1337, -99}}
		for _, p := range pairs {
			Expect(calculate(p[0], p[1])).To(Equal(calculate(p[1], p[0])))
		}
	})

	It("produces the output line the harness asserts on", func() {
		line := fmt.Sprintf("Result: %d\n", calculate(10, 20))
		Expect(line).To(Equal("Result: 30\n"))
	})
})
