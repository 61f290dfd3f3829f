package event

import (
	"context"
	"log"
	"sync"
	"time"

	"kapda-dekho/internal/cache"
)

const orderPlacedKey = "orders:placed"

// Recorder 以固定數量的 worker 非同步記錄營運事件到 Redis
// 記錄失敗只留 log，不影響原請求
type Recorder struct {
	cache cache.Cache
	jobs  chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

// NewRecorder 建立 recorder 並啟動 n 個 worker。n<=0 時預設為 1。
func NewRecorder(c cache.Cache, n int) *Recorder {
	if n <= 0 {
		n = 1
	}
	r := &Recorder{cache: c, jobs: make(chan func())}
	r.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer r.wg.Done()
			for job := range r.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return r
}

// OrderPlaced 遞增下單計數器
func (r *Recorder) OrderPlaced(orderID int) {
	r.jobs <- func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.cache.Incr(ctx, orderPlacedKey).Err(); err != nil {
			log.Printf("event: record order %d: %v", orderID, err)
		}
	}
}

// Stop 關閉佇列並等待所有 worker 結束，可重複呼叫
func (r *Recorder) Stop() {
	r.once.Do(func() {
		close(r.jobs)
	})
	r.wg.Wait()
}
