package layout

import (
	"sort"

	"github.com/tsawler/snapdoc/model"
)

// RankConfig holds configuration for font-size ranking
type RankConfig struct {
	// SizeTolerance is the relative size difference below which two font
	// sizes are treated as the same rank. Keeps float noise in OCR size
	// estimates from fragmenting one visual heading level into two
	// (default: 0.10)
	SizeTolerance float64

	// MaxHeadingRanks is the number of size ranks above body text that map
	// to heading levels; larger-but-lower ranks fall back to body
	// (default: 4 = Title, Heading1, Heading2, Heading3)
	MaxHeadingRanks int
}

// DefaultRankConfig returns sensible default configuration
func DefaultRankConfig() RankConfig {
	return RankConfig{
		SizeTolerance:   0.10,
		MaxHeadingRanks: 4,
	}
}

// SizeCluster is one group of lines whose font sizes fall within tolerance
// of each other
type SizeCluster struct {
	// Size is the cluster's representative font size (its largest member)
	Size float64

	// LineCount is the number of lines in the cluster
	LineCount int

	// Level is the level assigned to every line in the cluster
	Level model.Level
}

// Ranking is the result of analyzing an image's font-size distribution
type Ranking struct {
	// Levels holds the assigned level for each input line, in input order
	Levels []model.Level

	// Clusters are the detected size clusters, largest first
	Clusters []SizeCluster

	// BodySize is the representative size of the body cluster
	BodySize float64
}

// Ranker assigns semantic levels to lines from the relative font-size
// distribution of a single image
type Ranker struct {
	config RankConfig
}

// NewRanker creates a new ranker with default configuration
func NewRanker() *Ranker {
	return &Ranker{
		config: DefaultRankConfig(),
	}
}

// NewRankerWithConfig creates a ranker with custom configuration
func NewRankerWithConfig(config RankConfig) *Ranker {
	return &Ranker{
		config: config,
	}
}

// Rank clusters the lines' font sizes and maps clusters to levels.
//
// The most frequent cluster (weighted by line count, smaller size winning
// ties) is the body text. Clusters strictly larger than body are heading
// ranks in descending size order: the largest maps to Title, then
// Heading1, Heading2, Heading3; ranks beyond MaxHeadingRanks, and every
// cluster at or below the body size, map to Body. When the image has a
// single cluster there is no observable size variance and everything is
// body text.
func (r *Ranker) Rank(lines []Line) Ranking {
	if len(lines) == 0 {
		return Ranking{}
	}

	clusters := r.cluster(lines)
	bodyIdx := bodyClusterIndex(clusters)

	for i := range clusters {
		switch {
		case i >= bodyIdx:
			clusters[i].Level = model.LevelBody
		case i >= r.config.MaxHeadingRanks:
			clusters[i].Level = model.LevelBody
		default:
			// Rank 0 is Title, then Heading1..Heading3
			clusters[i].Level = model.LevelTitle + model.Level(i)
		}
	}

	levels := make([]model.Level, len(lines))
	for i, line := range lines {
		levels[i] = clusters[r.clusterIndexFor(clusters, line.FontSize)].Level
	}

	return Ranking{
		Levels:   levels,
		Clusters: clusters,
		BodySize: clusters[bodyIdx].Size,
	}
}

// cluster groups line font sizes into clusters, largest first. A size
// joins the current cluster when it is within SizeTolerance of the
// cluster's representative (largest) size.
func (r *Ranker) cluster(lines []Line) []SizeCluster {
	sizes := make([]float64, len(lines))
	for i, line := range lines {
		sizes[i] = line.FontSize
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	var clusters []SizeCluster
	for _, size := range sizes {
		n := len(clusters)
		if n > 0 && withinTolerance(clusters[n-1].Size, size, r.config.SizeTolerance) {
			clusters[n-1].LineCount++
			continue
		}
		clusters = append(clusters, SizeCluster{Size: size, LineCount: 1})
	}

	return clusters
}

// clusterIndexFor finds the cluster a font size belongs to
func (r *Ranker) clusterIndexFor(clusters []SizeCluster, size float64) int {
	for i, c := range clusters {
		if size >= c.Size || withinTolerance(c.Size, size, r.config.SizeTolerance) {
			return i
		}
	}
	return len(clusters) - 1
}

// bodyClusterIndex picks the cluster holding the body text: the one with
// the most lines, smaller sizes winning ties. Clusters are sorted largest
// first, so a later index means a smaller size.
func bodyClusterIndex(clusters []SizeCluster) int {
	best := 0
	for i, c := range clusters {
		if c.LineCount >= clusters[best].LineCount {
			best = i
		}
	}
	return best
}

// withinTolerance reports whether smaller is within the relative tolerance
// of larger. larger must be >= smaller.
func withinTolerance(larger, smaller, tolerance float64) bool {
	if larger <= 0 {
		return true
	}
	return (larger-smaller)/larger <= tolerance
}
