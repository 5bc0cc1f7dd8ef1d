package marker

import (
	"path/filepath"
	"sort"
	"sync"

	"github.com/T-PsyOl/iMove-Workshop/model"
	"github.com/T-PsyOl/iMove-Workshop/recording"
	"github.com/T-PsyOl/iMove-Workshop/util"
	"github.com/google/uuid"
)

// Collector accumulates ingested marker samples into one stream per
// participant until flushed to a capture file.
type Collector struct {
	mu        sync.Mutex
	sessionID string
	streams   map[string]*model.Stream
}

func NewCollector() *Collector {
	return &Collector{
		sessionID: uuid.New().String(),
		streams:   make(map[string]*model.Stream),
	}
}

func (c *Collector) SessionID() string {
	return c.sessionID
}

func (c *Collector) Ingest(sample model.MarkerSample) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.streams[sample.Participant]
	if !ok {
		s = &model.Stream{
			Name: "Keyboard-" + sample.Participant,
			Type: "Markers",
		}
		c.streams[sample.Participant] = s
	}
	s.Timestamps = append(s.Timestamps, sample.Timestamp)
	s.Labels = append(s.Labels, sample.Label)
}

// Container snapshots the collected streams, ordered by participant so
// output is stable across runs.
func (c *Collector) Container() *model.Container {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := util.GetKeys(c.streams)
	sort.Strings(keys)

	res := &model.Container{SessionID: c.sessionID}
	for _, k := range keys {
		res.Streams = append(res.Streams, *c.streams[k])
	}
	return res
}

// Flush writes the session to dir and starts a fresh session.
func (c *Collector) Flush(dir string) (string, error) {
	container := c.Container()
	path := filepath.Join(dir, container.SessionID+".rec")
	if err := recording.Save(path, container); err != nil {
		return "", err
	}

	c.mu.Lock()
	c.sessionID = uuid.New().String()
	c.streams = make(map[string]*model.Stream)
	c.mu.Unlock()

	return path, nil
}
