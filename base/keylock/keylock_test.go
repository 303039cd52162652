package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyLockSerializesSameKey(t *testing.T) {
	req := require.New(t)

	kl := New()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			kl.Lock("listing:1")
			counter++
			kl.Unlock("listing:1")
		}()
	}
	wg.Wait()

	req.Equal(100, counter)
	req.Empty(kl.locks)
}

func TestKeyLockIndependentKeys(t *testing.T) {
	req := require.New(t)

	kl := New()
	kl.Lock("a")

	done := make(chan struct{})
	go func() {
		kl.Lock("b")
		kl.Unlock("b")
		close(done)
	}()
	<-done

	kl.Unlock("a")
	req.Empty(kl.locks)
}
