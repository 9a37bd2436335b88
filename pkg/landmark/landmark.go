package landmark

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/dsnet/compress/bzip2"
	da "github.com/lintang-b-s/osmroute/pkg/datastructure"
	"github.com/lintang-b-s/osmroute/pkg/routing"
	"go.uber.org/zap"
)

/*
[1] Goldberg, A.V. and Harrelson, C. (2005) 'Computing the shortest path: A search meets graph theory', in Proceedings of the Sixteenth Annual ACM-SIAM Symposium on Discrete Algorithms. USA: Society for Industrial and Applied Mathematics (SODA '05), pp. 156-165.

Landmarks holds the precomputed ALT tables: for every landmark L the
shortest path cost from L to each reachable node and from each node to L.
built once after the graph is frozen, read-only afterwards, shared across
concurrent queries without synchronization.
*/
type Landmarks struct {
	landmarks []*da.Node
	lw        []map[int32]float64 // cost from landmark i to node
	vlw       []map[int32]float64 // cost from node to landmark i
}

func NewLandmarks() *Landmarks {
	return &Landmarks{
		landmarks: make([]*da.Node, 0),
		lw:        make([]map[int32]float64, 0),
		vlw:       make([]map[int32]float64, 0),
	}
}

func (lm *Landmarks) GetLandmarkNodes() []*da.Node {
	return lm.landmarks
}

/*
Distance tightest ALT lower bound on the travel cost from u to t, section
2.2 in [1]. for each landmark both triangle inequality sides are tried,
landmarks that cannot reach (or be reached from) one of the endpoints are
skipped. the result is clamped at 0 so it stays a feasible potential.

implements metrics.Metric.
*/
func (lm *Landmarks) Distance(u, t *da.Node) float64 {
	tighestLowerBound := -math.MaxFloat64
	for i := range lm.landmarks {
		uTo, okOne := lm.vlw[i][u.GetID()]
		tTo, okTwo := lm.vlw[i][t.GetID()]
		fromU, okThree := lm.lw[i][u.GetID()]
		fromT, okFour := lm.lw[i][t.GetID()]
		if !okOne || !okTwo || !okThree || !okFour {
			continue
		}

		lbOne := uTo - tTo
		lbTwo := fromT - fromU

		betterLb := math.Max(lbOne, lbTwo)
		tighestLowerBound = math.Max(tighestLowerBound, betterLb)
	}

	return math.Max(tighestLowerBound, 0)
}

// buildTables one forward and one backward one-to-all pass per landmark,
// fanned out over goroutines. the reversed graph is built once and shared.
func (lm *Landmarks) buildTables(graph *da.Graph, logger *zap.Logger) {
	k := len(lm.landmarks)
	lm.lw = make([]map[int32]float64, k)
	lm.vlw = make([]map[int32]float64, k)

	reversed := graph.Reverse()

	lock := sync.Mutex{}
	wg := sync.WaitGroup{}
	for i := 0; i < k; i++ {
		landmarkNode := lm.landmarks[i]

		wg.Add(1)
		go func(il int, l *da.Node) {
			defer wg.Done()

			forward := routing.NewModuleDijkstra(graph).ComputeShortestPathCostsReachable([]*da.Node{l})
			backward := routing.NewModuleDijkstra(reversed).ComputeShortestPathCostsReachable([]*da.Node{l})

			lock.Lock()
			lm.lw[il] = forward
			lm.vlw[il] = backward
			lock.Unlock()
		}(i, landmarkNode)
	}
	wg.Wait()

	logger.Info("done computing landmark tables",
		zap.Int("landmarks", k))
}

// WriteLandmarks persist the tables as bzip2 compressed text so a restart
// skips the precomputation.
func (lm *Landmarks) WriteLandmarks(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	w := bufio.NewWriter(bz)

	k := len(lm.landmarks)
	fmt.Fprintf(w, "%d\n", k)

	for i := 0; i < k; i++ {
		l := lm.landmarks[i]
		fmt.Fprintf(w, "%d %s %s\n", l.GetID(),
			strconv.FormatFloat(l.GetLat(), 'f', -1, 64),
			strconv.FormatFloat(l.GetLon(), 'f', -1, 64))

		if err := writeCostTable(w, lm.lw[i]); err != nil {
			return err
		}
		if err := writeCostTable(w, lm.vlw[i]); err != nil {
			return err
		}
	}

	return w.Flush()
}

func writeCostTable(w *bufio.Writer, table map[int32]float64) error {
	fmt.Fprintf(w, "%d", len(table))
	for id, cost := range table {
		fmt.Fprintf(w, " %d:%s", id, strconv.FormatFloat(cost, 'f', -1, 64))
	}
	_, err := fmt.Fprintf(w, "\n")
	return err
}

// ReadLandmarks load tables written by WriteLandmarks.
func ReadLandmarks(filename string) (*Landmarks, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		return nil, err
	}
	br := bufio.NewScanner(bz)
	br.Buffer(make([]byte, 1024*1024), 64*1024*1024)

	readLine := func() (string, error) {
		if !br.Scan() {
			if err := br.Err(); err != nil {
				return "", err
			}
			return "", errors.New("unexpected end of landmark file")
		}
		return br.Text(), nil
	}

	line, err := readLine()
	if err != nil {
		return nil, err
	}
	k, err := strconv.Atoi(line)
	if err != nil {
		return nil, err
	}

	lm := NewLandmarks()
	lm.landmarks = make([]*da.Node, k)
	lm.lw = make([]map[int32]float64, k)
	lm.vlw = make([]map[int32]float64, k)

	for i := 0; i < k; i++ {
		line, err := readLine()
		if err != nil {
			return nil, err
		}
		var (
			id       int32
			lat, lon float64
		)
		if _, err := fmt.Sscanf(line, "%d %f %f", &id, &lat, &lon); err != nil {
			return nil, err
		}
		lm.landmarks[i] = da.NewRoadNode(id, float32(lat), float32(lon))

		if lm.lw[i], err = readCostTable(readLine); err != nil {
			return nil, err
		}
		if lm.vlw[i], err = readCostTable(readLine); err != nil {
			return nil, err
		}
	}

	return lm, nil
}

func readCostTable(readLine func() (string, error)) (map[int32]float64, error) {
	line, err := readLine()
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errors.New("malformed landmark cost table")
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, err
	}
	if len(fields) != n+1 {
		return nil, errors.New("landmark cost table length mismatch")
	}

	table := make(map[int32]float64, n)
	for _, pair := range fields[1:] {
		var (
			id   int32
			cost float64
		)
		if _, err := fmt.Sscanf(pair, "%d:%f", &id, &cost); err != nil {
			return nil, err
		}
		table[id] = cost
	}
	return table, nil
}

