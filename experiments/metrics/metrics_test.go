package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(3)
	c.AddDirective(1)
	c.AddDirective(0)
	c.AddDirective(7)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.AddBreach()
		}()
	}
	wg.Wait()

	m := c.Complete(6, 13, 4, "fast")
	require.Equal(t, 3, m.Turn)
	require.Equal(t, 3, m.Directives)
	require.Equal(t, 8, m.Spawned)
	require.Equal(t, 10, m.Breaches)
	require.Equal(t, 6, m.Sites)
	require.Equal(t, "fast", m.Action)

	c.Start(4)
	m = c.Complete(6, 13, 4, "none")
	require.Zero(t, m.Directives)
	require.Zero(t, m.Breaches, "breaches are counted once")
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start(1)
	c.AddDirective(3)
	c.AddBreach()
	require.Equal(t, TurnMetric{}, c.Complete(1, 2, 3, "fast"))
}

func TestWriteTurnRecords(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	records := []TurnRecord{
		{Match: "m1", TurnMetric: TurnMetric{Turn: 0, Duration: time.Millisecond, Directives: 5, Spawned: 4, Sites: 4, MinFast: 9, MinHeavy: 3, Action: "fast"}},
		{Match: "m1", TurnMetric: TurnMetric{Turn: 1, Directives: 6, Sites: 4, Breaches: 1, MinFast: 9, MinHeavy: 3, Action: "none"}},
	}
	require.NoError(t, w.WriteTurnRecords(records))

	f, err := os.Open(filepath.Join(w.Dir(), "turn_records.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	require.Equal(t, "match", rows[0][0])
	require.Equal(t, []string{"m1", "0", "1ms", "5", "4", "4", "0", "9", "3", "fast"}, rows[1])
	require.Equal(t, "1", rows[2][6])
}
