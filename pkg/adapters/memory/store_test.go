package memory_test

import (
	"testing"

	"github.com/CakeVR/dialogic/pkg/adapters/memory"
	"github.com/CakeVR/dialogic/pkg/ports/tests"
)

func TestMemoryStore_Contract(t *testing.T) {
	tests.RunStateStoreContract(t, memory.NewStore())
}
