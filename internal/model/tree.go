package model

import (
	"math/rand"
	"sort"
)

// node is a leaf when Feature < 0.
type node struct {
	Feature   int       `json:"f"`
	Threshold float64   `json:"t,omitempty"`
	Left      int       `json:"l,omitempty"`
	Right     int       `json:"r,omitempty"`
	Value     []float64 `json:"v,omitempty"`
}

// Tree is a multi-output CART regression tree stored as a flat node slice
// with the root at index 0.
type Tree struct {
	Nodes []node `json:"nodes"`
}

func (t *Tree) predict(x []float64) []float64 {
	i := 0
	for {
		n := &t.Nodes[i]
		if n.Feature < 0 {
			return n.Value
		}
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

type split struct {
	feature   int
	threshold float64
	gain      float64
}

type treeBuilder struct {
	x       [][]float64
	y       [][]float64
	params  Params
	rng     *rand.Rand
	outputs int
	nodes   []node
}

func fitTree(x, y [][]float64, sample []int, p Params, rng *rand.Rand) Tree {
	b := &treeBuilder{
		x:       x,
		y:       y,
		params:  p,
		rng:     rng,
		outputs: len(y[0]),
	}
	b.grow(sample, 0)
	return Tree{Nodes: b.nodes}
}

func (b *treeBuilder) grow(idx []int, depth int) int {
	id := len(b.nodes)
	b.nodes = append(b.nodes, node{Feature: -1})

	if (b.params.MaxDepth > 0 && depth >= b.params.MaxDepth) ||
		len(idx) < b.params.MinSamplesSplit ||
		len(idx) < 2*b.params.MinSamplesLeaf {
		b.nodes[id].Value = b.mean(idx)
		return id
	}

	s, ok := b.bestSplit(idx)
	if !ok {
		b.nodes[id].Value = b.mean(idx)
		return id
	}

	left := make([]int, 0, len(idx))
	right := make([]int, 0, len(idx))
	for _, row := range idx {
		if b.x[row][s.feature] <= s.threshold {
			left = append(left, row)
		} else {
			right = append(right, row)
		}
	}

	l := b.grow(left, depth+1)
	r := b.grow(right, depth+1)
	b.nodes[id] = node{Feature: s.feature, Threshold: s.threshold, Left: l, Right: r}
	return id
}

func (b *treeBuilder) mean(idx []int) []float64 {
	out := make([]float64, b.outputs)
	for _, row := range idx {
		for j, v := range b.y[row] {
			out[j] += v
		}
	}
	for j := range out {
		out[j] /= float64(len(idx))
	}
	return out
}

// sse is the summed squared error across outputs for a node holding n rows.
func sse(sum, sq []float64, n int) float64 {
	var total float64
	for j := range sum {
		total += sq[j] - sum[j]*sum[j]/float64(n)
	}
	return total
}

func (b *treeBuilder) bestSplit(idx []int) (split, bool) {
	n := len(idx)
	k := b.outputs

	totalSum := make([]float64, k)
	totalSq := make([]float64, k)
	for _, row := range idx {
		for j, v := range b.y[row] {
			totalSum[j] += v
			totalSq[j] += v * v
		}
	}
	parent := sse(totalSum, totalSq, n)
	if parent <= 1e-12 {
		return split{}, false
	}

	var best split
	found := false

	sorted := make([]int, n)
	leftSum := make([]float64, k)
	leftSq := make([]float64, k)
	rightSum := make([]float64, k)
	rightSq := make([]float64, k)
	minLeaf := max(b.params.MinSamplesLeaf, 1)

	for _, f := range b.candidateFeatures() {
		copy(sorted, idx)
		sort.Slice(sorted, func(a, c int) bool {
			return b.x[sorted[a]][f] < b.x[sorted[c]][f]
		})
		clear(leftSum)
		clear(leftSq)

		for i := 0; i < n-1; i++ {
			row := sorted[i]
			for j, v := range b.y[row] {
				leftSum[j] += v
				leftSq[j] += v * v
			}

			nl, nr := i+1, n-i-1
			if nl < minLeaf {
				continue
			}
			if nr < minLeaf {
				break
			}
			v, next := b.x[row][f], b.x[sorted[i+1]][f]
			if v == next {
				continue
			}

			for j := range rightSum {
				rightSum[j] = totalSum[j] - leftSum[j]
				rightSq[j] = totalSq[j] - leftSq[j]
			}
			gain := parent - sse(leftSum, leftSq, nl) - sse(rightSum, rightSq, nr)
			if gain > best.gain+1e-12 {
				best = split{feature: f, threshold: (v + next) / 2, gain: gain}
				found = true
			}
		}
	}
	return best, found
}

func (b *treeBuilder) candidateFeatures() []int {
	nf := len(b.x[0])
	if b.params.MaxFeatures <= 0 || b.params.MaxFeatures >= 1 {
		all := make([]int, nf)
		for i := range all {
			all[i] = i
		}
		return all
	}
	m := max(int(b.params.MaxFeatures*float64(nf)), 1)
	return b.rng.Perm(nf)[:m]
}
