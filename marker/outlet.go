package marker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/T-PsyOl/iMove-Workshop/model"
	"github.com/bep/debounce"
)

// Outlet is the real-time channel an emitter publishes key transitions
// on. Push is synchronous: one call per physical key event, no queuing.
type Outlet interface {
	Push(sample model.MarkerSample) error
	Close() error
}

// HTTPOutlet posts each sample to a collector endpoint as JSON.
type HTTPOutlet struct {
	endpoint  string
	client    *http.Client
	pushed    int64
	debounced func(f func())
}

func NewHTTPOutlet(endpoint string) *HTTPOutlet {
	return &HTTPOutlet{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 2 * time.Second},
		// keep per-keystroke progress chatter off the hot path
		debounced: debounce.New(500 * time.Millisecond),
	}
}

func (o *HTTPOutlet) Push(sample model.MarkerSample) error {
	data, err := json.Marshal(sample)
	if err != nil {
		return err
	}

	resp, err := o.client.Post(o.endpoint, "application/json", bytes.NewReader(data))
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("collector returned status %v", resp.StatusCode)
	}

	n := atomic.AddInt64(&o.pushed, 1)
	o.debounced(func() {
		fmt.Printf("Published %v markers so far\n", n)
	})
	return nil
}

func (o *HTTPOutlet) Close() error {
	fmt.Printf("Published %v markers total\n", atomic.LoadInt64(&o.pushed))
	return nil
}

// MemoryOutlet collects samples in-process. Test double for the
// emitter and the pipeline.
type MemoryOutlet struct {
	Samples []model.MarkerSample
}

func (o *MemoryOutlet) Push(sample model.MarkerSample) error {
	o.Samples = append(o.Samples, sample)
	return nil
}

func (o *MemoryOutlet) Close() error { return nil }
