package services

import (
	stderrors "errors"
	"sync"
	"testing"

	"gorm.io/gorm"
)

// seqTable mimics a table with a unique seq column where readers can race.
type seqTable struct {
	mu   sync.Mutex
	rows map[int]bool
}

func (t *seqTable) max() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for seq := range t.rows {
		if seq > n {
			n = seq
		}
	}
	return n
}

func (t *seqTable) insert(seq int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.rows[seq] {
		return gorm.ErrDuplicatedKey
	}
	t.rows[seq] = true
	return nil
}

func TestRetryOnDuplicate_RecoversFromCollision(t *testing.T) {
	table := &seqTable{rows: map[int]bool{1: true, 2: true, 3: true}}

	// Both writers read MAX(seq)=3 before either inserts.
	staleMax := table.max()
	if err := table.insert(staleMax + 1); err != nil {
		t.Fatalf("first writer: %v", err)
	}

	attempts := 0
	var got int
	err := retryOnDuplicate(maxSeqAttempts, func() error {
		attempts++
		seq := staleMax + 1
		if attempts > 1 {
			seq = table.max() + 1
		}
		got = seq
		return table.insert(seq)
	})
	if err != nil {
		t.Fatalf("second writer: %v", err)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
	if got != 5 {
		t.Errorf("second writer seq = %d, want 5", got)
	}
}

func TestRetryOnDuplicate_GivesUp(t *testing.T) {
	attempts := 0
	err := retryOnDuplicate(maxSeqAttempts, func() error {
		attempts++
		return gorm.ErrDuplicatedKey
	})
	if !stderrors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("err = %v, want ErrDuplicatedKey", err)
	}
	if attempts != maxSeqAttempts {
		t.Errorf("attempts = %d, want %d", attempts, maxSeqAttempts)
	}
}

func TestRetryOnDuplicate_OtherErrorsAreNotRetried(t *testing.T) {
	boom := stderrors.New("connection reset")
	attempts := 0
	err := retryOnDuplicate(maxSeqAttempts, func() error {
		attempts++
		return boom
	})
	if err != boom || attempts != 1 {
		t.Errorf("got %v after %d attempts, want %v after 1", err, attempts, boom)
	}
}

func TestRetryOnDuplicate_ConcurrentWriters(t *testing.T) {
	table := &seqTable{rows: map[int]bool{}}
	const writers = 8

	// Writers that collide re-read the max on retry; the loser of each round
	// gets through on a later attempt as long as contention is bounded.
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- retryOnDuplicate(writers, func() error {
				return table.insert(table.max() + 1)
			})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("writer failed: %v", err)
		}
	}
	if n := table.max(); n != writers {
		t.Errorf("max seq = %d, want %d", n, writers)
	}
}
