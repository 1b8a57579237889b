package anim

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestAnim(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Anim Suite")
}
