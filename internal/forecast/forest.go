package forecast

import "math/rand"

// treeNode is a node of a binary regression tree. Features are one-hot
// encoded, so every split tests a single column against 0.5.
type treeNode struct {
	feature int
	left    *treeNode
	right   *treeNode
	value   float64
}

func (n *treeNode) isLeaf() bool {
	return n.left == nil
}

func (n *treeNode) predict(x []float64) float64 {
	for !n.isLeaf() {
		if x[n.feature] < 0.5 {
			n = n.left
		} else {
			n = n.right
		}
	}

	return n.value
}

// forest is an ensemble of regression trees, each fit on a bootstrap
// sample of the training data. The prediction is the mean over all trees.
type forest struct {
	trees []*treeNode
}

func (f *forest) predict(x []float64) float64 {
	var sum float64
	for _, tree := range f.trees {
		sum += tree.predict(x)
	}

	return sum / float64(len(f.trees))
}

// growForest fits an ensemble on the given samples. The rng drives the
// bootstrap sampling, so the same rng state always grows the same forest.
func growForest(rng *rand.Rand, features [][]float64, targets []float64, trees, maxDepth int) *forest {
	f := &forest{trees: make([]*treeNode, trees)}

	for i := range f.trees {
		sample := make([]int, len(targets))
		for j := range sample {
			sample[j] = rng.Intn(len(targets))
		}

		f.trees[i] = buildTree(features, targets, sample, 0, maxDepth)
	}

	return f
}

// buildTree recursively grows a regression tree over the samples
// referenced by indices, splitting on the feature that minimizes the
// summed squared error of the two partitions.
func buildTree(features [][]float64, targets []float64, indices []int, depth, maxDepth int) *treeNode {
	node := &treeNode{value: mean(targets, indices)}
	if depth >= maxDepth || len(indices) < 2 {
		return node
	}

	parentError := squaredError(targets, indices)
	if parentError == 0 {
		return node
	}

	bestFeature := -1
	bestError := parentError
	width := len(features[indices[0]])

	for feature := 0; feature < width; feature++ {
		left, right := partition(features, indices, feature)
		if len(left) == 0 || len(right) == 0 {
			continue
		}

		err := squaredError(targets, left) + squaredError(targets, right)
		if err < bestError {
			bestError = err
			bestFeature = feature
		}
	}

	if bestFeature < 0 {
		return node
	}

	left, right := partition(features, indices, bestFeature)
	node.feature = bestFeature
	node.left = buildTree(features, targets, left, depth+1, maxDepth)
	node.right = buildTree(features, targets, right, depth+1, maxDepth)

	return node
}

func partition(features [][]float64, indices []int, feature int) (left, right []int) {
	for _, i := range indices {
		if features[i][feature] < 0.5 {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	return left, right
}

func mean(targets []float64, indices []int) float64 {
	var sum float64
	for _, i := range indices {
		sum += targets[i]
	}

	return sum / float64(len(indices))
}

// squaredError returns the sum of squared deviations from the mean.
func squaredError(targets []float64, indices []int) float64 {
	m := mean(targets, indices)

	var sum float64
	for _, i := range indices {
		d := targets[i] - m
		sum += d * d
	}

	return sum
}
